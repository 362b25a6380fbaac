package bootstrap

import (
	"fmt"
	"log/slog"

	"voicereport/internal/audio"
	"voicereport/internal/config"
	"voicereport/internal/ports"
	"voicereport/internal/render"
	"voicereport/internal/reportclient"
	"voicereport/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Controller *usecase.SessionController
	Client     *reportclient.Client
	Config     config.Config
	Logger     *slog.Logger
}

// Build loads configuration and wires all backend dependencies for the current runtime.
// A nil logger is replaced by one built from the logging configuration.
func Build(eventSink ports.EventSink, logger *slog.Logger) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}
	return BuildWithConfig(cfg, eventSink, logger)
}

// BuildWithConfig wires the runtime graph from an already resolved configuration.
func BuildWithConfig(cfg config.Config, eventSink ports.EventSink, logger *slog.Logger) (Services, error) {
	if eventSink == nil {
		return Services{}, fmt.Errorf("event sink is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := reportclient.New(
		cfg.Server.BaseURL,
		cfg.Server.RequestTimeout,
		reportclient.WithLogger(logger),
	)
	if err != nil {
		return Services{}, fmt.Errorf("configure report server: %w", err)
	}

	controller := usecase.NewSessionController(
		audio.NewFFMPEGCapture(cfg.Audio.RecorderCommand, audio.WithLogger(logger)),
		client,
		render.New(render.ParseFormat(cfg.Report.Format)),
		eventSink,
		usecase.Config{
			Capture: ports.CaptureConfig{
				SampleRate:  cfg.Audio.SampleRate,
				Channels:    cfg.Audio.Channels,
				InputFormat: cfg.Audio.InputFormat,
				InputDevice: cfg.Audio.InputDevice,
			},
			ChunkSize:   cfg.Session.ChunkSize,
			MaxDuration: cfg.Session.MaxDuration,
			Logger:      logger,
		},
	)

	logger.Debug("services built",
		"server", client.BaseURL(),
		"config", cfg.Path,
		"report_format", cfg.Report.Format,
		"max_duration", cfg.Session.MaxDuration,
	)
	return Services{Controller: controller, Client: client, Config: cfg, Logger: logger}, nil
}
