// Package cli provides the command-line interface for ocrsummary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirudhjbabu1/ocrsummary/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ocrsummary",
		Short: "Turn OCR detection-event logs into narrative reports",
		Long: `ocrsummary is a batch analyzer for OCR detection-event logs.

It reads the JSON event log produced by the capture process and generates
a narrative report: what was read, when, and whether anything unusual
happened (activity spikes, significant pauses).

The report has three sections:
  - Content summary (narrative excerpt and top content words)
  - Session metrics (start, end, duration, total words read)
  - Key events (high activity and pauses, in detection order)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
