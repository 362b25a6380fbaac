package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultServerURL      = "http://127.0.0.1:5000"
	DefaultRequestTimeout = 2 * time.Minute
)

// Config stores runtime configuration for the recorder.
type Config struct {
	Server  ServerConfig
	Audio   AudioConfig
	Session SessionConfig
	Report  ReportConfig
	Log     LogConfig
	// Path is the config file that was loaded, empty when none was found.
	Path string
}

type ServerConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type AudioConfig struct {
	RecorderCommand string
	InputFormat     string
	InputDevice     string
	SampleRate      int
	Channels        int
}

type SessionConfig struct {
	ChunkSize   int
	MaxDuration time.Duration
}

type ReportConfig struct {
	Format string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type fileConfig struct {
	Server struct {
		BaseURL        string `toml:"base_url"`
		RequestTimeout string `toml:"request_timeout"`
	} `toml:"server"`
	Audio struct {
		FFmpegCommand string `toml:"ffmpeg_command"`
		InputFormat   string `toml:"input_format"`
		InputDevice   string `toml:"input_device"`
		SampleRate    int    `toml:"sample_rate"`
		Channels      int    `toml:"channels"`
	} `toml:"audio"`
	Session struct {
		ChunkSize   int    `toml:"chunk_size"`
		MaxDuration string `toml:"max_duration"`
	} `toml:"session"`
	Report struct {
		Format string `toml:"format"`
	} `toml:"report"`
	Log struct {
		Level string `toml:"level"`
		JSON  *bool  `toml:"json"`
	} `toml:"log"`
}

// Load resolves configuration from defaults, the config file and environment variables,
// in that order of precedence.
func Load() (Config, error) {
	cfg := Default()

	path := configFilePath()
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
		cfg.Path = path
	}

	applyEnvOverrides(&cfg)
	sanitize(&cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:        DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Audio: AudioConfig{
			RecorderCommand: "ffmpeg",
			InputFormat:     "pulse",
			InputDevice:     "default",
			SampleRate:      16000,
			Channels:        1,
		},
		Session: SessionConfig{
			ChunkSize: 4096,
		},
		Report: ReportConfig{Format: "plain"},
		Log:    LogConfig{Level: "info"},
	}
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.Server.BaseURL != "" {
		cfg.Server.BaseURL = fc.Server.BaseURL
	}
	if fc.Server.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.Server.RequestTimeout)
		if err != nil {
			return fmt.Errorf("config %s: server.request_timeout: %w", path, err)
		}
		cfg.Server.RequestTimeout = d
	}
	if fc.Audio.FFmpegCommand != "" {
		cfg.Audio.RecorderCommand = expandTilde(fc.Audio.FFmpegCommand)
	}
	if fc.Audio.InputFormat != "" {
		cfg.Audio.InputFormat = fc.Audio.InputFormat
	}
	if fc.Audio.InputDevice != "" {
		cfg.Audio.InputDevice = fc.Audio.InputDevice
	}
	if fc.Audio.SampleRate != 0 {
		cfg.Audio.SampleRate = fc.Audio.SampleRate
	}
	if fc.Audio.Channels != 0 {
		cfg.Audio.Channels = fc.Audio.Channels
	}
	if fc.Session.ChunkSize != 0 {
		cfg.Session.ChunkSize = fc.Session.ChunkSize
	}
	if fc.Session.MaxDuration != "" {
		d, err := time.ParseDuration(fc.Session.MaxDuration)
		if err != nil {
			return fmt.Errorf("config %s: session.max_duration: %w", path, err)
		}
		cfg.Session.MaxDuration = d
	}
	if fc.Report.Format != "" {
		cfg.Report.Format = fc.Report.Format
	}
	if fc.Log.Level != "" {
		cfg.Log.Level = fc.Log.Level
	}
	if fc.Log.JSON != nil {
		cfg.Log.JSON = *fc.Log.JSON
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Server.BaseURL = envOrDefault("VOICEREPORT_SERVER_URL", cfg.Server.BaseURL)
	cfg.Server.RequestTimeout = envOrDefaultMillis("VOICEREPORT_REQUEST_TIMEOUT_MS", cfg.Server.RequestTimeout)
	cfg.Audio.RecorderCommand = envOrDefault("VOICEREPORT_FFMPEG_COMMAND", cfg.Audio.RecorderCommand)
	cfg.Audio.InputFormat = envOrDefault("VOICEREPORT_AUDIO_INPUT_FORMAT", cfg.Audio.InputFormat)
	cfg.Audio.InputDevice = envOrDefault("VOICEREPORT_AUDIO_INPUT_DEVICE", cfg.Audio.InputDevice)
	cfg.Audio.SampleRate = envOrDefaultInt("VOICEREPORT_SAMPLE_RATE", cfg.Audio.SampleRate)
	cfg.Audio.Channels = envOrDefaultInt("VOICEREPORT_CHANNELS", cfg.Audio.Channels)
	cfg.Session.ChunkSize = envOrDefaultInt("VOICEREPORT_AUDIO_CHUNK_SIZE", cfg.Session.ChunkSize)
	cfg.Session.MaxDuration = envOrDefaultMillis("VOICEREPORT_MAX_DURATION_MS", cfg.Session.MaxDuration)
	cfg.Report.Format = envOrDefault("VOICEREPORT_REPORT_FORMAT", cfg.Report.Format)
	cfg.Log.Level = envOrDefault("VOICEREPORT_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.JSON = envOrDefaultBool("VOICEREPORT_LOG_JSON", cfg.Log.JSON)
}

func sanitize(cfg *Config) {
	cfg.Server.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Server.BaseURL), "/")
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultServerURL
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = 16000
	}
	if cfg.Audio.Channels <= 0 {
		cfg.Audio.Channels = 1
	}
	if cfg.Session.ChunkSize < 256 {
		cfg.Session.ChunkSize = 4096
	}
	if cfg.Session.MaxDuration < 0 {
		cfg.Session.MaxDuration = 0
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Report.Format)) {
	case "markdown":
		cfg.Report.Format = "markdown"
	default:
		cfg.Report.Format = "plain"
	}
}

func configFilePath() string {
	if explicit := strings.TrimSpace(os.Getenv("VOICEREPORT_CONFIG")); explicit != "" {
		return expandTilde(explicit)
	}

	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "voicereport")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "voicereport")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func envOrDefault(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrDefaultInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDefaultMillis(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return time.Duration(parsed) * time.Millisecond
}

func envOrDefaultBool(key string, fallback bool) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
