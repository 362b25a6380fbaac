package ports

import (
	"context"
	"io"

	"voicereport/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

// CaptureConfig describes how the microphone should be captured.
type CaptureConfig struct {
	SampleRate  int
	Channels    int
	InputFormat string
	InputDevice string
}

// CaptureSource grants access to the microphone.
type CaptureSource interface {
	// Acquire blocks until the host grants a capture handle or refuses.
	Acquire(ctx context.Context, cfg CaptureConfig) (CaptureHandle, error)
}

// CaptureHandle is a granted microphone. After Start, reads yield ordered chunks;
// io.EOF is the terminal stopped signal and any other read error is a runtime failure.
type CaptureHandle interface {
	io.Reader
	IsTypeSupported(mimeType string) bool
	Start(ctx context.Context, enc domain.Encoding) error
	// Stop asks the source to finish; buffered data is still delivered before EOF.
	Stop() error
	// Release frees the underlying device. Calling it more than once is a no-op.
	Release() error
}

// PayloadPackager is implemented by handles whose raw stream needs a container
// wrapped around it before upload.
type PayloadPackager interface {
	Package(enc domain.Encoding, raw []byte) ([]byte, error)
}

// ReportClient talks to the report server.
type ReportClient interface {
	Upload(ctx context.Context, payload domain.AudioPayload) (domain.Report, error)
	GenerateDocument(ctx context.Context, sessionID string, req domain.DocumentRequest) (domain.DocumentLink, error)
}

// ReportRenderer prepares report text for display.
type ReportRenderer interface {
	Render(text string) (domain.RenderedReport, error)
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason)
	ReportReady(report domain.RenderedReport)
	DocumentReady(link domain.DocumentLink)
	SessionError(code domain.ErrorCode, detail string)
}
