package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voicereport/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "5s", formatDuration(5*time.Second))
	assert.Equal(t, "1m05s", formatDuration(65*time.Second))
	assert.Equal(t, "1h00m01s", formatDuration(time.Hour+time.Second))
	assert.Equal(t, "0s", formatDuration(200*time.Millisecond))
}

func TestStatePrintsOnlyVisibleTransitions(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.State(domain.SessionStateRecording, domain.SessionReasonRecordingStarted)
	f.State(domain.SessionStateStopping, domain.SessionReasonStopRequested)
	f.State(domain.SessionStateProcessing, domain.SessionReasonProcessing)
	f.State(domain.SessionStateIdle, domain.SessionReasonReportReady)
	f.State(domain.SessionStateIdle, domain.SessionReasonClosed)

	assert.Equal(t, "⏹️  Stopping recording...\n📤 Processing audio...\n✅ Analysis complete!\n", buf.String())
}

func TestSessionErrorAndDocument(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.SessionError(domain.ErrorCodeTransport, "Server error: 500")
	f.SessionError("custom", "")
	f.Document(domain.DocumentLink{URL: "http://127.0.0.1:5000/download_pdf/r1.pdf"})

	assert.Equal(t, "❌ Network error: Server error: 500\n❌ Error\n📥 Download PDF: http://127.0.0.1:5000/download_pdf/r1.pdf\n", buf.String())
}

func TestReportAndRecordingStarted(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.RecordingStarted(domain.Encoding{MIMEType: "audio/wav"}, 5*time.Second)
	f.Report(domain.RenderedReport{Text: "Line1\nLine2\n"})

	assert.Contains(t, buf.String(), "Recording audio/wav (stops after 5s)")
	assert.Contains(t, buf.String(), "📝 Report:\n\nLine1\nLine2\n\n")
}
