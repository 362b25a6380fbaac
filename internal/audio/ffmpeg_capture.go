package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"voicereport/internal/domain"
	"voicereport/internal/encoding"
	"voicereport/internal/ports"
)

// FFMPEGCapture records the microphone through an ffmpeg subprocess.
type FFMPEGCapture struct {
	command      string
	startupGrace time.Duration
	stopTimeout  time.Duration
	logger       *slog.Logger
}

type Option func(*FFMPEGCapture)

func WithLogger(logger *slog.Logger) Option {
	return func(c *FFMPEGCapture) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewFFMPEGCapture(command string, opts ...Option) *FFMPEGCapture {
	if command == "" {
		command = "ffmpeg"
	}
	c := &FFMPEGCapture{
		command:      command,
		startupGrace: 250 * time.Millisecond,
		stopTimeout:  1200 * time.Millisecond,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Acquire checks that ffmpeg can be run and probes which encodings it can produce.
func (c *FFMPEGCapture) Acquire(ctx context.Context, cfg ports.CaptureConfig) (ports.CaptureHandle, error) {
	path, err := exec.LookPath(c.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found: %v", domain.ErrCapabilityUnavailable, c.command, err)
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = "pulse"
	}
	if cfg.InputDevice == "" {
		cfg.InputDevice = "default"
	}

	// A failed probe leaves negotiation on the fallback encoding.
	caps, probeErr := probeCapabilities(ctx, path)
	if probeErr != nil {
		c.logger.Warn("ffmpeg capability probe failed", "command", path, "error", probeErr)
	}

	return &ffmpegHandle{
		command:      path,
		cfg:          cfg,
		caps:         caps,
		probeErr:     probeErr,
		startupGrace: c.startupGrace,
		stopTimeout:  c.stopTimeout,
	}, nil
}

type ffmpegHandle struct {
	command      string
	cfg          ports.CaptureConfig
	caps         capabilities
	probeErr     error
	startupGrace time.Duration
	stopTimeout  time.Duration

	mu       sync.Mutex
	stdout   *os.File
	stderr   *bytes.Buffer
	process  *os.Process
	waitErr  <-chan error
	released bool

	releaseOnce sync.Once
	releaseErr  error
}

func (h *ffmpegHandle) IsTypeSupported(mimeType string) bool {
	return h.caps.supports(mimeType)
}

func (h *ffmpegHandle) Start(ctx context.Context, enc domain.Encoding) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return errCaptureReleased
	}
	if h.process != nil {
		return errors.New("capture already started")
	}

	args := captureArgs(h.cfg, enc)
	cmd := exec.CommandContext(ctx, h.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	// A caller-owned pipe keeps buffered output readable after ffmpeg exits.
	reader, writer, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create ffmpeg pipe: %w", err)
	}
	cmd.Stdout = writer
	if err := cmd.Start(); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}
	_ = writer.Close()

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
		close(waitErr)
	}()

	select {
	case err := <-waitErr:
		_ = reader.Close()
		detail := stringsTrimSpaceSafe(stderr.String())
		if h.probeErr != nil {
			detail = fmt.Sprintf("%s (capability probe failed: %v)", detail, h.probeErr)
		}
		if err != nil {
			return fmt.Errorf("%w: ffmpeg exited before capture started: %v: %s", domain.ErrPermissionDenied, err, detail)
		}
		return fmt.Errorf("%w: ffmpeg exited before capture started: %s", domain.ErrPermissionDenied, detail)
	case <-time.After(h.startupGrace):
	}

	h.stdout = reader
	h.stderr = &stderr
	h.process = cmd.Process
	h.waitErr = waitErr
	return nil
}

func (h *ffmpegHandle) Read(p []byte) (int, error) {
	h.mu.Lock()
	stdout := h.stdout
	h.mu.Unlock()
	if stdout == nil {
		return 0, errors.New("capture not started")
	}
	n, err := stdout.Read(p)
	if err != nil && errors.Is(err, os.ErrClosed) {
		return n, io.EOF
	}
	return n, err
}

// Stop interrupts ffmpeg so it flushes the container and closes its output.
func (h *ffmpegHandle) Stop() error {
	h.mu.Lock()
	process := h.process
	h.mu.Unlock()
	if process == nil {
		return nil
	}
	if err := process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to interrupt ffmpeg: %w", err)
	}
	return nil
}

func (h *ffmpegHandle) Release() error {
	h.releaseOnce.Do(func() {
		// Start holds mu for its whole run, so it either finished before this
		// point or will see released and refuse to spawn ffmpeg.
		h.mu.Lock()
		h.released = true
		process := h.process
		waitErr := h.waitErr
		stdout := h.stdout
		stderr := h.stderr
		h.mu.Unlock()

		if process == nil {
			return
		}

		_ = process.Signal(os.Interrupt)

		select {
		case err, ok := <-waitErr:
			if ok {
				h.releaseErr = normalizeStopErr(err)
			}
		case <-time.After(h.stopTimeout):
			_ = process.Kill()
			err, ok := <-waitErr
			if ok {
				h.releaseErr = normalizeStopErr(err)
			}
		}

		if closeErr := stdout.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			if h.releaseErr == nil {
				h.releaseErr = closeErr
			}
		}

		if h.releaseErr != nil && stderr != nil && stderr.Len() > 0 {
			h.releaseErr = fmt.Errorf("%w: %s", h.releaseErr, stringsTrimSpaceSafe(stderr.String()))
		}
	})

	return h.releaseErr
}

// Package wraps raw PCM in a WAV container; other encodings are already muxed by ffmpeg.
func (h *ffmpegHandle) Package(enc domain.Encoding, raw []byte) ([]byte, error) {
	if enc.MIMEType != encoding.WAV.MIMEType {
		return raw, nil
	}
	return EncodeWAV(raw, h.cfg.SampleRate, h.cfg.Channels)
}

var errCaptureReleased = errors.New("capture handle already released")

func captureArgs(cfg ports.CaptureConfig, enc domain.Encoding) []string {
	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "warning",
		"-f", cfg.InputFormat,
		"-i", cfg.InputDevice,
		"-ac", strconv.Itoa(cfg.Channels),
		"-ar", strconv.Itoa(cfg.SampleRate),
	}

	switch enc.MIMEType {
	case encoding.WebMOpus.MIMEType:
		args = append(args, "-c:a", "libopus", "-f", "webm", "-flush_packets", "1")
	case encoding.WAV.MIMEType:
		args = append(args, "-f", "s16le")
	default:
		args = append(args, "-c:a", "flac", "-f", "ogg", "-flush_packets", "1")
	}
	return append(args, "-")
}

func normalizeStopErr(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func stringsTrimSpaceSafe(input string) string {
	if input == "" {
		return input
	}
	return string(bytes.TrimSpace([]byte(input)))
}
