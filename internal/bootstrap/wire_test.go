package bootstrap

import (
	"path/filepath"
	"testing"

	"voicereport/internal/config"
	"voicereport/internal/domain"
	"voicereport/internal/logging"
)

func TestBuildSuccess(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("VOICEREPORT_CONFIG", "")
	t.Setenv("VOICEREPORT_SERVER_URL", "http://127.0.0.1:5000/")

	services, err := Build(noopEventSink{}, logging.Discard())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if services.Controller == nil {
		t.Fatalf("expected controller")
	}
	if got := services.Client.BaseURL(); got != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected base url %q", got)
	}
	if status := services.Controller.Status(); status.State != domain.SessionStateIdle || !status.Control.Enabled {
		t.Fatalf("expected idle enabled controller, got %+v", status)
	}
}

func TestBuildFailsOnInvalidServerURL(t *testing.T) {
	cfg := config.Default()
	cfg.Server.BaseURL = "ftp://reports"

	_, err := BuildWithConfig(cfg, noopEventSink{}, logging.Discard())
	if err == nil {
		t.Fatalf("expected build error due to invalid server url")
	}
}

func TestBuildRequiresEventSink(t *testing.T) {
	if _, err := BuildWithConfig(config.Default(), nil, nil); err == nil {
		t.Fatalf("expected build error without event sink")
	}
}

type noopEventSink struct{}

func (noopEventSink) SessionStateChanged(_ domain.SessionState, _ domain.SessionStateReason) {}
func (noopEventSink) ReportReady(_ domain.RenderedReport)                                    {}
func (noopEventSink) DocumentReady(_ domain.DocumentLink)                                    {}
func (noopEventSink) SessionError(_ domain.ErrorCode, _ string)                              {}
