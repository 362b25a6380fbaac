package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var envKeys = []string{
	"VOICEREPORT_CONFIG",
	"VOICEREPORT_SERVER_URL",
	"VOICEREPORT_REQUEST_TIMEOUT_MS",
	"VOICEREPORT_FFMPEG_COMMAND",
	"VOICEREPORT_AUDIO_INPUT_FORMAT",
	"VOICEREPORT_AUDIO_INPUT_DEVICE",
	"VOICEREPORT_SAMPLE_RATE",
	"VOICEREPORT_CHANNELS",
	"VOICEREPORT_AUDIO_CHUNK_SIZE",
	"VOICEREPORT_MAX_DURATION_MS",
	"VOICEREPORT_REPORT_FORMAT",
	"VOICEREPORT_LOG_LEVEL",
	"VOICEREPORT_LOG_JSON",
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
	return home
}

func writeConfig(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected no config file, got %q", cfg.Path)
	}
	if cfg.Server.BaseURL != DefaultServerURL || cfg.Server.RequestTimeout != DefaultRequestTimeout {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Audio.RecorderCommand != "ffmpeg" || cfg.Audio.InputFormat != "pulse" || cfg.Audio.InputDevice != "default" {
		t.Fatalf("unexpected audio config: %+v", cfg.Audio)
	}
	if cfg.Session.ChunkSize != 4096 || cfg.Session.MaxDuration != 0 {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Report.Format != "plain" || cfg.Log.Level != "info" || cfg.Log.JSON {
		t.Fatalf("unexpected report/log config: %+v %+v", cfg.Report, cfg.Log)
	}
}

func TestLoadReadsXDGConfigFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "voicereport", "config.toml")
	writeConfig(t, path, `
[server]
base_url = "https://reports.example.com/"
request_timeout = "45s"

[audio]
ffmpeg_command = "~/bin/ffmpeg"
input_format = "alsa"
input_device = "hw:1"
sample_rate = 44100
channels = 2

[session]
chunk_size = 1024
max_duration = "5s"

[report]
format = "Markdown"

[log]
level = "debug"
json = true
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("expected config path %q, got %q", path, cfg.Path)
	}
	if cfg.Server.BaseURL != "https://reports.example.com" || cfg.Server.RequestTimeout != 45*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Audio.RecorderCommand != filepath.Join(home, "bin", "ffmpeg") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Audio.RecorderCommand)
	}
	if cfg.Audio.InputFormat != "alsa" || cfg.Audio.InputDevice != "hw:1" || cfg.Audio.SampleRate != 44100 || cfg.Audio.Channels != 2 {
		t.Fatalf("unexpected audio config: %+v", cfg.Audio)
	}
	if cfg.Session.ChunkSize != 1024 || cfg.Session.MaxDuration != 5*time.Second {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Report.Format != "markdown" || cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Fatalf("unexpected report/log config: %+v %+v", cfg.Report, cfg.Log)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	writeConfig(t, path, `
[server]
base_url = "https://file.example.com"

[log]
json = true
`)

	t.Setenv("VOICEREPORT_CONFIG", path)
	t.Setenv("VOICEREPORT_SERVER_URL", "http://localhost:8080")
	t.Setenv("VOICEREPORT_REQUEST_TIMEOUT_MS", "1500")
	t.Setenv("VOICEREPORT_FFMPEG_COMMAND", "my-ffmpeg")
	t.Setenv("VOICEREPORT_AUDIO_INPUT_FORMAT", "avfoundation")
	t.Setenv("VOICEREPORT_AUDIO_INPUT_DEVICE", ":0")
	t.Setenv("VOICEREPORT_SAMPLE_RATE", "22050")
	t.Setenv("VOICEREPORT_CHANNELS", "2")
	t.Setenv("VOICEREPORT_AUDIO_CHUNK_SIZE", "512")
	t.Setenv("VOICEREPORT_MAX_DURATION_MS", "5000")
	t.Setenv("VOICEREPORT_REPORT_FORMAT", "markdown")
	t.Setenv("VOICEREPORT_LOG_LEVEL", "warn")
	t.Setenv("VOICEREPORT_LOG_JSON", "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("expected explicit config path, got %q", cfg.Path)
	}
	if cfg.Server.BaseURL != "http://localhost:8080" || cfg.Server.RequestTimeout != 1500*time.Millisecond {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Audio.RecorderCommand != "my-ffmpeg" || cfg.Audio.InputFormat != "avfoundation" || cfg.Audio.InputDevice != ":0" {
		t.Fatalf("unexpected audio config: %+v", cfg.Audio)
	}
	if cfg.Audio.SampleRate != 22050 || cfg.Audio.Channels != 2 {
		t.Fatalf("unexpected sample/channels: %+v", cfg.Audio)
	}
	if cfg.Session.ChunkSize != 512 || cfg.Session.MaxDuration != 5*time.Second {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Report.Format != "markdown" || cfg.Log.Level != "warn" || cfg.Log.JSON {
		t.Fatalf("unexpected report/log config: %+v %+v", cfg.Report, cfg.Log)
	}
}

func TestLoadInvalidValuesFallback(t *testing.T) {
	isolate(t)
	t.Setenv("VOICEREPORT_SAMPLE_RATE", "bad")
	t.Setenv("VOICEREPORT_CHANNELS", "-1")
	t.Setenv("VOICEREPORT_AUDIO_CHUNK_SIZE", "5")
	t.Setenv("VOICEREPORT_REQUEST_TIMEOUT_MS", "bad")
	t.Setenv("VOICEREPORT_MAX_DURATION_MS", "-10")
	t.Setenv("VOICEREPORT_REPORT_FORMAT", "pdf")
	t.Setenv("VOICEREPORT_LOG_JSON", "not-bool")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Fatalf("expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 1 {
		t.Fatalf("expected default channels, got %d", cfg.Audio.Channels)
	}
	if cfg.Session.ChunkSize != 4096 {
		t.Fatalf("expected chunk size fallback, got %d", cfg.Session.ChunkSize)
	}
	if cfg.Server.RequestTimeout != DefaultRequestTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.Server.RequestTimeout)
	}
	if cfg.Session.MaxDuration != 0 {
		t.Fatalf("expected manual stop, got %s", cfg.Session.MaxDuration)
	}
	if cfg.Report.Format != "plain" {
		t.Fatalf("expected plain format, got %q", cfg.Report.Format)
	}
	if cfg.Log.JSON {
		t.Fatalf("expected default json=false")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "broken.toml")
	writeConfig(t, path, "[server\nbase_url = ")
	t.Setenv("VOICEREPORT_CONFIG", path)

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "decode config") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.toml")
	writeConfig(t, path, "[session]\nmax_duration = \"five seconds\"\n")
	t.Setenv("VOICEREPORT_CONFIG", path)

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "session.max_duration") {
		t.Fatalf("expected duration error, got %v", err)
	}
}
