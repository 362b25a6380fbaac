package domain

import "time"

// SessionState models the record-upload-report lifecycle.
type SessionState string

const (
	SessionStateIdle       SessionState = "idle"
	SessionStateRequesting SessionState = "requesting"
	SessionStateRecording  SessionState = "recording"
	SessionStateStopping   SessionState = "stopping"
	SessionStateProcessing SessionState = "processing"
	SessionStateError      SessionState = "error"
)

// Active reports whether a session in this state holds the control.
func (s SessionState) Active() bool {
	switch s {
	case SessionStateRequesting, SessionStateRecording, SessionStateStopping, SessionStateProcessing:
		return true
	default:
		return false
	}
}

// SessionStateReason provides a structured reason for state transitions.
type SessionStateReason string

const (
	SessionReasonReady                 SessionStateReason = "ready"
	SessionReasonRequestingCapture     SessionStateReason = "requesting_capture"
	SessionReasonRecordingStarted      SessionStateReason = "recording_started"
	SessionReasonStopRequested         SessionStateReason = "stop_requested"
	SessionReasonCancelRequested       SessionStateReason = "cancel_requested"
	SessionReasonTimeLimitReached      SessionStateReason = "time_limit_reached"
	SessionReasonProcessing            SessionStateReason = "processing"
	SessionReasonReportReady           SessionStateReason = "report_ready"
	SessionReasonCapabilityUnavailable SessionStateReason = "capability_unavailable"
	SessionReasonPermissionDenied      SessionStateReason = "permission_denied"
	SessionReasonCaptureFailed         SessionStateReason = "capture_failed"
	SessionReasonUploadFailed          SessionStateReason = "upload_failed"
	SessionReasonResponseInvalid       SessionStateReason = "response_invalid"
	SessionReasonClosed                SessionStateReason = "closed"
)

// Message returns the status text shown for a reason.
func (r SessionStateReason) Message() string {
	switch r {
	case SessionReasonReady:
		return "Ready to record"
	case SessionReasonRequestingCapture:
		return "Starting recording..."
	case SessionReasonRecordingStarted:
		return "Recording in progress..."
	case SessionReasonStopRequested:
		return "Stopping recording..."
	case SessionReasonCancelRequested:
		return "Recording cancelled. Finishing capture..."
	case SessionReasonTimeLimitReached:
		return "Time limit reached. Stopping recording..."
	case SessionReasonProcessing:
		return "Processing audio..."
	case SessionReasonReportReady:
		return "Analysis complete!"
	case SessionReasonCapabilityUnavailable:
		return "Audio recording not supported"
	case SessionReasonPermissionDenied:
		return "Microphone access denied"
	case SessionReasonCaptureFailed:
		return "Recording error occurred"
	case SessionReasonUploadFailed:
		return "Upload failed"
	case SessionReasonResponseInvalid:
		return "Unexpected server response"
	case SessionReasonClosed:
		return "Recorder closed"
	default:
		return ""
	}
}

// Control labels for the dual-purpose record button.
const (
	LabelStart      = "🎤 Start Recording"
	LabelStop       = "⏹️ Stop Recording"
	LabelStarting   = "⏳ Starting..."
	LabelStopping   = "⏳ Stopping..."
	LabelProcessing = "⏳ Processing..."
)

// ControlAction is what activating the record button would do.
type ControlAction string

const (
	ControlActionStart ControlAction = "start"
	ControlActionStop  ControlAction = "stop"
	ControlActionNone  ControlAction = "none"
)

// Control describes the record button.
type Control struct {
	Enabled bool          `json:"enabled"`
	Label   string        `json:"label"`
	Action  ControlAction `json:"action"`
}

// ControlFor derives the record button for a state. idleLabel overrides LabelStart when set.
func ControlFor(state SessionState, idleLabel string) Control {
	if idleLabel == "" {
		idleLabel = LabelStart
	}
	switch state {
	case SessionStateRequesting:
		return Control{Enabled: false, Label: LabelStarting, Action: ControlActionNone}
	case SessionStateRecording:
		return Control{Enabled: true, Label: LabelStop, Action: ControlActionStop}
	case SessionStateStopping:
		return Control{Enabled: false, Label: LabelStopping, Action: ControlActionNone}
	case SessionStateProcessing:
		return Control{Enabled: false, Label: LabelProcessing, Action: ControlActionNone}
	default:
		return Control{Enabled: true, Label: idleLabel, Action: ControlActionStart}
	}
}

// Encoding is a negotiated audio container/codec.
type Encoding struct {
	MIMEType  string `json:"mimeType"`
	Extension string `json:"extension"`
}

// FileName is the upload filename for this encoding.
func (e Encoding) FileName() string {
	return "recording." + e.Extension
}

// AudioPayload is the assembled recording submitted to the upload endpoint.
type AudioPayload struct {
	Encoding Encoding
	Data     []byte
	Duration time.Duration
}

// Report is the upload endpoint's analysis of a recording.
type Report struct {
	Text      string `json:"report"`
	SessionID string `json:"sessionId"`
}

// RenderedReport is a report prepared for display.
type RenderedReport struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// DocumentRequest carries the optional identifying fields for a generated document.
type DocumentRequest struct {
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

// DocumentLink references a generated document on the report server.
type DocumentLink struct {
	PDFPath string `json:"pdfPath"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

// Status summarizes the current controller state for a surface.
type Status struct {
	State             SessionState    `json:"state"`
	Active            bool            `json:"active"`
	Message           string          `json:"message,omitempty"`
	Control           Control         `json:"control"`
	Encoding          *Encoding       `json:"encoding,omitempty"`
	Report            *RenderedReport `json:"report,omitempty"`
	DocumentAvailable bool            `json:"documentAvailable"`
	Document          *DocumentLink   `json:"document,omitempty"`
	DocumentError     string          `json:"documentError,omitempty"`
	Error             string          `json:"error,omitempty"`
}
