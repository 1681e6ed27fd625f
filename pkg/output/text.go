package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/anirudhjbabu1/ocrsummary/pkg/analyzer"
	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

const sectionRule = "------------------------------------------------"

// TextFormatter renders the narrative report as human-readable text with
// a fixed section order: content summary, session metrics, key events.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	fmt.Fprintf(w, "OCR Smart Analysis Report (Generated: %s)\n",
		report.Metadata.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	result := report.Analysis
	if result.InsufficientData() {
		fmt.Fprintln(w, result.Message())
		return nil
	}

	f.formatContent(result, w)
	f.formatMetrics(result, w)
	f.formatKeyEvents(result, w)

	if f.opts.Verbose {
		f.formatMetadata(report, w)
	}

	return nil
}

func (f *TextFormatter) formatContent(result *analyzer.Result, w io.Writer) {
	fmt.Fprintln(w, "## 1. Content Summary (What was read?)")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, "This section provides a summary of the content by identifying the most important sentences:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**NARRATIVE:** %s\n", result.Narrative)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**TOP CONTENT WORDS:** %s\n", strings.Join(result.TopWords, ", "))
	fmt.Fprintf(w, "**TOTAL UNIQUE WORDS:** %d\n", result.UniqueWords)
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatMetrics(result *analyzer.Result, w io.Writer) {
	fmt.Fprintln(w, "## 2. Session Metrics (When did I read?)")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "**[START TIME]** The OCR session began at **%s**.\n",
		result.Span.Start.Format(eventlog.ReportClockLayout))
	fmt.Fprintf(w, "**[END TIME]** The last detection was recorded at **%s**.\n",
		result.Span.End.Format(eventlog.ReportClockLayout))
	fmt.Fprintf(w, "**[TOTAL DURATION]** Total time span covered by detections: **%.2f seconds**.\n",
		result.Span.Seconds())
	fmt.Fprintf(w, "**[TOTAL WORDS READ]** Total words processed (non-consecutive duplicates): **%d**.\n",
		result.TotalWordsRead)
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatKeyEvents(result *analyzer.Result, w io.Writer) {
	fmt.Fprintln(w, "## 3. Key Events (Was there anything important?)")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, "The following events suggest a large document (high word count) or a major pause:")

	if len(result.KeyEvents) == 0 {
		fmt.Fprintln(w, "- No significant pauses or high-activity events detected based on set thresholds.")
		return
	}

	for _, finding := range result.KeyEvents {
		switch {
		case finding.Activity != nil:
			fmt.Fprintf(w, "- HIGH ACTIVITY at %s: %d words detected. (Possible dense document/mail)\n",
				finding.Activity.Timestamp, finding.Activity.Count)
		case finding.Gap != nil:
			fmt.Fprintf(w, "- PAUSE/BREAK between %s and %s (%.1f seconds). (Possible switch of content)\n",
				finding.Gap.From, finding.Gap.To, finding.Gap.Seconds())
		}
	}
}

func (f *TextFormatter) formatMetadata(report *Report, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Log file: %s\n", report.Metadata.LogFile)
	fmt.Fprintf(w, "Records loaded: %d (%d dropped)\n",
		report.Metadata.RecordsLoaded, report.Metadata.RecordsDropped)
	fmt.Fprintf(w, "Summarizer: %s\n", report.Analysis.Summarizer)
}
