package main

import (
	"errors"
	"fmt"
	"os"

	"voicereport/internal/cli"
	"voicereport/internal/config"
	"voicereport/internal/logging"
	"voicereport/internal/output"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrSessionFailed) {
			output.NewFormatter(os.Stderr).Error(err.Error())
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	deps := &cli.Dependencies{
		Config: cfg,
		Logger: logging.New(os.Stderr, cfg.Log.Level, cfg.Log.JSON),
	}

	return cli.NewRootCmd(deps).Execute()
}
