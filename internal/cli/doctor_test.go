package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicereport/internal/config"
)

func TestCheckServerReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	r := checkServer(context.Background(), srv.URL)
	assert.True(t, r.ok)
	assert.Contains(t, r.detail, "responded with 404")
}

func TestCheckServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := checkServer(context.Background(), url)
	assert.False(t, r.ok)
	assert.Contains(t, r.detail, "unreachable")
}

func TestCheckFFmpegMissing(t *testing.T) {
	r := checkFFmpeg(context.Background(), "voicereport-no-such-ffmpeg")
	assert.False(t, r.ok)
	assert.Contains(t, r.detail, "not found")
}

func TestCheckConfigFile(t *testing.T) {
	assert.Contains(t, checkConfigFile(config.Config{}).detail, "using defaults")
	assert.Equal(t, "/tmp/voicereport.toml", checkConfigFile(config.Config{Path: "/tmp/voicereport.toml"}).detail)
}

func TestDoctorCommandReportsMissingPrerequisites(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	cfg := config.Default()
	cfg.Server.BaseURL = srv.URL
	cfg.Audio.RecorderCommand = "voicereport-no-such-ffmpeg"

	var out bytes.Buffer
	cmd := NewRootCmd(&Dependencies{Config: cfg, Out: &out})
	cmd.SetArgs([]string{"doctor"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Report server")
	assert.Contains(t, out.String(), "Some prerequisites are missing.")
}
