package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"voicereport/internal/audio"
	"voicereport/internal/config"
	"voicereport/internal/encoding"
	"voicereport/internal/output"
)

const doctorTimeout = 5 * time.Second

type checkResult struct {
	name   string
	ok     bool
	detail string
}

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(cmd.OutOrStdout())

			results := runChecks(cmd.Context(), deps.Config)
			ok := true
			for _, r := range results {
				f.SetupCheck(r.name, r.ok, r.detail)
				ok = ok && r.ok
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to record!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}

// runChecks runs the independent checks concurrently and returns them in display order.
func runChecks(ctx context.Context, cfg config.Config) []checkResult {
	results := make([]checkResult, 3)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results[0] = checkFFmpeg(ctx, cfg.Audio.RecorderCommand)
		return nil
	})
	g.Go(func() error {
		results[1] = checkServer(ctx, cfg.Server.BaseURL)
		return nil
	})
	g.Go(func() error {
		results[2] = checkConfigFile(cfg)
		return nil
	})
	_ = g.Wait()

	return results
}

func checkFFmpeg(ctx context.Context, command string) checkResult {
	if _, err := exec.LookPath(command); err != nil {
		return checkResult{name: "ffmpeg", ok: false, detail: fmt.Sprintf("%s not found. Install ffmpeg or set VOICEREPORT_FFMPEG_COMMAND", command)}
	}

	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()
	types, err := audio.SupportedTypes(ctx, command)
	if err != nil {
		return checkResult{name: "ffmpeg", ok: false, detail: err.Error()}
	}

	supported := make(map[string]bool, len(types))
	for _, t := range types {
		supported[t] = true
	}
	chosen := encoding.Negotiate(func(mime string) bool { return supported[mime] })
	detail := fmt.Sprintf("records %s", chosen.MIMEType)
	if len(types) > 0 {
		detail += fmt.Sprintf(" (supports %s)", strings.Join(types, ", "))
	}
	return checkResult{name: "ffmpeg", ok: true, detail: detail}
}

func checkServer(ctx context.Context, baseURL string) checkResult {
	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return checkResult{name: "Report server", ok: false, detail: err.Error()}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return checkResult{name: "Report server", ok: false, detail: fmt.Sprintf("%s unreachable: %v", baseURL, err)}
	}
	resp.Body.Close()
	return checkResult{name: "Report server", ok: true, detail: fmt.Sprintf("%s responded with %d", baseURL, resp.StatusCode)}
}

func checkConfigFile(cfg config.Config) checkResult {
	if cfg.Path == "" {
		return checkResult{name: "Config file", ok: true, detail: "none found, using defaults and environment"}
	}
	return checkResult{name: "Config file", ok: true, detail: cfg.Path}
}
