package cli

import (
	"voicereport/internal/domain"
	"voicereport/internal/output"
)

// formatterSink prints controller events for headless recording.
type formatterSink struct {
	f *output.Formatter
}

func (s formatterSink) SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason) {
	s.f.State(state, reason)
}

func (s formatterSink) ReportReady(report domain.RenderedReport) {
	s.f.Report(report)
}

func (s formatterSink) DocumentReady(link domain.DocumentLink) {
	s.f.Document(link)
}

func (s formatterSink) SessionError(code domain.ErrorCode, detail string) {
	s.f.SessionError(code, detail)
}
