package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"voicereport/internal/bootstrap"
	"voicereport/internal/domain"
	"voicereport/internal/logging"
	"voicereport/internal/output"
	"voicereport/internal/tui"
	"voicereport/internal/usecase"
)

// ErrSessionFailed is returned after a failure that was already reported to the user.
var ErrSessionFailed = errors.New("recording session failed")

type recordOptions struct {
	noTUI       bool
	pdf         bool
	request     domain.DocumentRequest
	maxDuration time.Duration
}

// recordSession is the controller surface used by headless recording.
type recordSession interface {
	Toggle(ctx context.Context) (domain.Status, error)
	Cancel() error
	Close() error
	Status() domain.Status
	WaitIdle(ctx context.Context) error
	GenerateDocument(ctx context.Context, req domain.DocumentRequest) (domain.DocumentLink, error)
}

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var opts recordOptions

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a dictation and fetch its report",
		Long: "Record from the microphone until stopped, upload the recording and print the report.\n" +
			"In the terminal UI press space to start or stop, esc to stop early, p to generate a PDF and q to quit.\n" +
			"With --no-tui (or when stdin is not a terminal) press Enter to stop and Ctrl+C to stop early.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			if cmd.Flags().Changed("max-duration") {
				cfg.Session.MaxDuration = opts.maxDuration
			}
			opts.maxDuration = cfg.Session.MaxDuration

			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()

			if opts.noTUI || !isTerminal(in) {
				f := output.NewFormatter(out)
				services, err := bootstrap.BuildWithConfig(cfg, formatterSink{f: f}, deps.Logger)
				if err != nil {
					return err
				}

				interrupts := make(chan os.Signal, 2)
				signal.Notify(interrupts, os.Interrupt)
				defer signal.Stop(interrupts)

				return runHeadless(cmd.Context(), services.Controller, f, in, out, interrupts, opts)
			}

			sink := tui.NewSink(64)
			services, err := bootstrap.BuildWithConfig(cfg, sink, logging.Discard())
			if err != nil {
				return err
			}
			defer services.Controller.Close()

			model := tui.New(cmd.Context(), services.Controller, sink.Events(), opts.request)
			program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("terminal ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "Record without the terminal UI")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "Generate a PDF after the report without asking")
	cmd.Flags().StringVar(&opts.request.PatientName, "patient", "", "Patient name for the PDF")
	cmd.Flags().StringVar(&opts.request.DoctorName, "doctor", "", "Doctor name for the PDF")
	cmd.Flags().DurationVar(&opts.maxDuration, "max-duration", 0, "Stop recording automatically after this long (0 records until stopped)")

	return cmd
}

func runHeadless(
	ctx context.Context,
	session recordSession,
	f *output.Formatter,
	in io.Reader,
	out io.Writer,
	interrupts <-chan os.Signal,
	opts recordOptions,
) error {
	defer session.Close()

	status, err := session.Toggle(ctx)
	if err != nil {
		return ErrSessionFailed
	}
	if status.Encoding != nil {
		f.RecordingStarted(*status.Encoding, opts.maxDuration)
	}

	// input is the only reader of in until the recording ends, so a read still
	// pending after an early stop answers the first prompt question.
	input := newLineInput(in)
	lines := input.next()

	idle := make(chan struct{})
	go func() {
		_ = session.WaitIdle(ctx)
		close(idle)
	}()

wait:
	for {
		select {
		case res := <-lines:
			input.received()
			if res.err != nil {
				lines = nil
				continue
			}
			_, _ = session.Toggle(ctx)
			break wait
		case <-interrupts:
			_ = session.Cancel()
			break wait
		case <-idle:
			break wait
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	select {
	case <-idle:
	case <-interrupts:
		f.Warning("Interrupted. Recording discarded.")
		return ErrSessionFailed
	case <-ctx.Done():
		return ctx.Err()
	}

	final := session.Status()
	if final.State == domain.SessionStateError {
		return ErrSessionFailed
	}
	if !final.DocumentAvailable {
		return nil
	}

	req := opts.request
	if !opts.pdf {
		var generate bool
		if input.pending() {
			req, generate, err = promptDocumentLines(ctx, input, out, req)
		} else {
			req, generate, err = promptDocumentRequest(in, out, req)
		}
		if err != nil {
			return err
		}
		if !generate {
			return nil
		}
	}

	if _, err := session.GenerateDocument(ctx, req); err != nil {
		if errors.Is(err, usecase.ErrNoReport) {
			f.Warning("The server did not return a session id, so no PDF can be generated.")
		}
		return ErrSessionFailed
	}
	return nil
}
