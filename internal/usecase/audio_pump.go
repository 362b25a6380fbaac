package usecase

import (
	"errors"
	"io"
)

// pumpCaptureChunks reads the capture stream until it ends. It returns nil when the
// source signalled a normal stop (io.EOF) and the read error otherwise.
func pumpCaptureChunks(source io.Reader, chunkSize int, onChunk func([]byte)) error {
	if chunkSize < 256 {
		chunkSize = 4096
	}

	buf := make([]byte, chunkSize)
	for {
		n, err := source.Read(buf)
		if n > 0 {
			onChunk(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
