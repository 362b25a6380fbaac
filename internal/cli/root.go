package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"voicereport/internal/config"
	"voicereport/internal/version"
)

type Dependencies struct {
	Config config.Config
	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "voicereport",
		Short:         "Record a dictation and turn it into a report",
		Long:          "Records the microphone, uploads the recording to the report server, shows the returned report and optionally generates a PDF from it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	if deps.In != nil {
		rootCmd.SetIn(deps.In)
	}
	if deps.Out != nil {
		rootCmd.SetOut(deps.Out)
	}

	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
