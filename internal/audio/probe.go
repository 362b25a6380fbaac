package audio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"voicereport/internal/encoding"
)

const probeTimeout = 3 * time.Second

// capabilities lists the ffmpeg encoders and muxers relevant to negotiation.
type capabilities struct {
	encoders map[string]bool
	muxers   map[string]bool
}

func (c capabilities) supports(mimeType string) bool {
	switch mimeType {
	case encoding.WebMOpus.MIMEType:
		return c.muxers["webm"] && c.encoders["libopus"]
	case encoding.WAV.MIMEType:
		return c.encoders["pcm_s16le"]
	case encoding.Ogg.MIMEType:
		return c.muxers["ogg"] && c.encoders["flac"]
	default:
		return false
	}
}

// SupportedTypes reports which preferred MIME types the given ffmpeg can produce.
func SupportedTypes(ctx context.Context, command string) ([]string, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, err
	}
	caps, err := probeCapabilities(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, enc := range encoding.Preference {
		if caps.supports(enc.MIMEType) {
			out = append(out, enc.MIMEType)
		}
	}
	return out, nil
}

func probeCapabilities(ctx context.Context, command string) (capabilities, error) {
	caps := capabilities{encoders: map[string]bool{}, muxers: map[string]bool{}}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	encoders, err := exec.CommandContext(ctx, command, "-hide_banner", "-encoders").Output()
	if err != nil {
		return caps, fmt.Errorf("failed to list ffmpeg encoders: %w", err)
	}
	caps.encoders = parseListing(encoders)

	muxers, err := exec.CommandContext(ctx, command, "-hide_banner", "-muxers").Output()
	if err != nil {
		return caps, fmt.Errorf("failed to list ffmpeg muxers: %w", err)
	}
	caps.muxers = parseListing(muxers)

	return caps, nil
}

// parseListing reads the name column of `ffmpeg -encoders` / `-muxers` output.
// Entries start after the dashed separator line.
func parseListing(output []byte) map[string]bool {
	names := map[string]bool{}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	body := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !body {
			if line != "" && strings.Trim(line, "-") == "" {
				body = true
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		for _, name := range strings.Split(fields[1], ",") {
			names[name] = true
		}
	}
	return names
}
