package domain

import "errors"

// ErrorCode identifies non-fatal and fatal backend errors.
type ErrorCode string

const (
	ErrorCodeStartup               ErrorCode = "startup"
	ErrorCodeCapabilityUnavailable ErrorCode = "capability_unavailable"
	ErrorCodePermissionDenied      ErrorCode = "permission_denied"
	ErrorCodeCaptureRuntime        ErrorCode = "capture_runtime"
	ErrorCodeCaptureStop           ErrorCode = "capture_stop"
	ErrorCodeTransport             ErrorCode = "transport"
	ErrorCodeProtocol              ErrorCode = "protocol"
)

// Message returns a short headline for the code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrorCodeStartup:
		return "Startup failed"
	case ErrorCodeCapabilityUnavailable:
		return "Audio recording not supported"
	case ErrorCodePermissionDenied:
		return "Microphone access denied"
	case ErrorCodeCaptureRuntime:
		return "Recording error"
	case ErrorCodeCaptureStop:
		return "Audio stop issue"
	case ErrorCodeTransport:
		return "Network error"
	case ErrorCodeProtocol:
		return "Unexpected server response"
	default:
		return ""
	}
}

var (
	// ErrCapabilityUnavailable is returned by capture sources that cannot record on this host.
	ErrCapabilityUnavailable = errors.New("audio capture is not available")
	// ErrPermissionDenied is returned when the capture device refuses access.
	ErrPermissionDenied = errors.New("microphone access denied")
	// ErrServerRejected marks responses where the server answered but reported failure.
	ErrServerRejected = errors.New("server reported failure")
)

// Error is a classified failure with a short human-readable message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error.
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the classification of err, falling back to the given code.
func CodeOf(err error, fallback ErrorCode) ErrorCode {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Code
	}
	switch {
	case errors.Is(err, ErrCapabilityUnavailable):
		return ErrorCodeCapabilityUnavailable
	case errors.Is(err, ErrPermissionDenied):
		return ErrorCodePermissionDenied
	}
	return fallback
}

// MessageOf returns the short message of a classified error, or err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var classified *Error
	if errors.As(err, &classified) && classified.Message != "" {
		return classified.Message
	}
	return err.Error()
}
