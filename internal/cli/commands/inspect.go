package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhjbabu1/ocrsummary/pkg/analyzer"
	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <event-log>",
		Short: "Show per-event statistics without writing a report",
		Long: `Inspect a JSON detection-event log and print per-event statistics.

Useful for checking what a log contains before analysis: event counts,
timestamp validity, the session time span, and each event's word counts.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	logPath := args[0]
	out := cmd.OutOrStdout()

	events, err := eventlog.Load(logPath)
	if err != nil {
		return fmt.Errorf("loading event log: %w", err)
	}

	fmt.Fprintf(out, "Inspecting %s...\n\n", logPath)

	session := analyzer.Normalize(events)
	fmt.Fprintf(out, "Events: %d loaded, %d valid, %d dropped\n",
		len(events), len(session.Events), len(session.Dropped))

	for _, dropped := range session.Dropped {
		fmt.Fprintf(out, "  ! record %d has bad timestamp: %q\n", dropped.Index, dropped.Timestamp)
	}

	span, ok := analyzer.SessionSpan(session.Events)
	if !ok {
		fmt.Fprintln(out, "\nNo valid events to measure.")
		return nil
	}

	fmt.Fprintf(out, "Session: %s - %s (%.2f seconds)\n",
		span.Start.Format(eventlog.ReportClockLayout),
		span.End.Format(eventlog.ReportClockLayout),
		span.Seconds())
	fmt.Fprintf(out, "Words read: %d total, %d unique\n\n",
		analyzer.TotalWordsRead(session.Events),
		analyzer.NewWordStats(session.Events).UniqueWords())

	for i, ev := range session.Events {
		fmt.Fprintf(out, "  %d. %s  words=%d non-dup=%d\n",
			i+1, ev.Timestamp, ev.TotalWords, ev.NonDuplicateCount)
	}

	return nil
}
