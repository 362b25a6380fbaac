package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"voicereport/internal/domain"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) RecordingStarted(enc domain.Encoding, limit time.Duration) {
	if limit > 0 {
		fmt.Fprintf(f.w, "🔴 Recording %s (stops after %s). Press Enter to stop, Ctrl+C to cancel.\n", enc.MIMEType, formatDuration(limit))
		return
	}
	fmt.Fprintf(f.w, "🔴 Recording %s. Press Enter to stop, Ctrl+C to cancel.\n", enc.MIMEType)
}

func (f *Formatter) State(state domain.SessionState, reason domain.SessionStateReason) {
	message := reason.Message()
	if message == "" {
		return
	}
	switch state {
	case domain.SessionStateStopping:
		fmt.Fprintf(f.w, "⏹️  %s\n", message)
	case domain.SessionStateProcessing:
		fmt.Fprintf(f.w, "📤 %s\n", message)
	case domain.SessionStateIdle:
		if reason == domain.SessionReasonReportReady {
			fmt.Fprintf(f.w, "✅ %s\n", message)
		}
	}
}

func (f *Formatter) Report(report domain.RenderedReport) {
	fmt.Fprintf(f.w, "\n📝 Report:\n\n%s\n\n", strings.TrimRight(report.Text, "\n"))
}

func (f *Formatter) Document(link domain.DocumentLink) {
	fmt.Fprintf(f.w, "📥 Download PDF: %s\n", link.URL)
}

func (f *Formatter) SessionError(code domain.ErrorCode, detail string) {
	headline := code.Message()
	if headline == "" {
		headline = "Error"
	}
	if detail == "" {
		f.Error(headline)
		return
	}
	f.Error(fmt.Sprintf("%s: %s", headline, detail))
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
