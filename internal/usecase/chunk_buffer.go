package usecase

import "bytes"

// chunkBuffer keeps captured fragments in arrival order.
type chunkBuffer struct {
	chunks [][]byte
	size   int
}

func newChunkBuffer() *chunkBuffer {
	return &chunkBuffer{}
}

// Append stores a copy of chunk. Empty chunks are dropped.
func (b *chunkBuffer) Append(chunk []byte) bool {
	if len(chunk) == 0 {
		return false
	}
	b.chunks = append(b.chunks, append([]byte(nil), chunk...))
	b.size += len(chunk)
	return true
}

func (b *chunkBuffer) Len() int {
	return len(b.chunks)
}

func (b *chunkBuffer) Size() int {
	return b.size
}

// Bytes concatenates the chunks in order.
func (b *chunkBuffer) Bytes() []byte {
	return bytes.Join(b.chunks, nil)
}

func (b *chunkBuffer) Reset() {
	b.chunks = nil
	b.size = 0
}
