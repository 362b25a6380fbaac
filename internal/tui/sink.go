package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"voicereport/internal/domain"
)

// Sink forwards controller events to the bubbletea program as messages.
// Sends never block; the model re-reads controller status on every state
// change, so a dropped event only delays a redraw.
type Sink struct {
	ch chan tea.Msg
}

func NewSink(buffer int) *Sink {
	if buffer <= 0 {
		buffer = 64
	}
	return &Sink{ch: make(chan tea.Msg, buffer)}
}

// Events returns the channel the model reads from.
func (s *Sink) Events() <-chan tea.Msg {
	return s.ch
}

func (s *Sink) SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason) {
	s.send(StateChangedMsg{State: state, Reason: reason})
}

func (s *Sink) ReportReady(report domain.RenderedReport) {
	s.send(ReportReadyMsg{Report: report})
}

func (s *Sink) DocumentReady(link domain.DocumentLink) {
	s.send(DocumentReadyMsg{Link: link})
}

func (s *Sink) SessionError(code domain.ErrorCode, detail string) {
	s.send(SessionErrorMsg{Code: code, Detail: detail})
}

func (s *Sink) send(msg tea.Msg) {
	select {
	case s.ch <- msg:
	default:
	}
}

// waitForEvent reads the next controller event.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return msg
	}
}
