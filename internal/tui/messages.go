package tui

import "voicereport/internal/domain"

// StateChangedMsg is sent when the controller changes state.
type StateChangedMsg struct {
	State  domain.SessionState
	Reason domain.SessionStateReason
}

// ReportReadyMsg carries a rendered report.
type ReportReadyMsg struct {
	Report domain.RenderedReport
}

// DocumentReadyMsg carries a generated document link.
type DocumentReadyMsg struct {
	Link domain.DocumentLink
}

// SessionErrorMsg carries an error reported by the controller.
type SessionErrorMsg struct {
	Code   domain.ErrorCode
	Detail string
}

// ToggleResultMsg carries the result of a toggle command.
type ToggleResultMsg struct {
	Status domain.Status
	Err    error
}

// CancelResultMsg carries the result of a cancel command.
type CancelResultMsg struct {
	Err error
}

// DocumentResultMsg carries the result of a document request.
type DocumentResultMsg struct {
	Link domain.DocumentLink
	Err  error
}

// eventsClosedMsg signals that the event channel was closed.
type eventsClosedMsg struct{}
