package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anirudhjbabu1/ocrsummary/pkg/analyzer"
	"github.com/anirudhjbabu1/ocrsummary/pkg/config"
	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
	"github.com/anirudhjbabu1/ocrsummary/pkg/output"
	"github.com/anirudhjbabu1/ocrsummary/pkg/summarize"
	"github.com/anirudhjbabu1/ocrsummary/pkg/webhook"
)

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config            string
	Output            string
	Format            string
	Summarizer        string
	GapThreshold      float64
	ActivityThreshold int
	Stdout            bool
	Verbose           bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <event-log>",
		Short: "Analyze an OCR event log and write the narrative report",
		Long: `Analyze a JSON detection-event log and write the narrative report.

The pipeline sorts events chronologically, aggregates word frequencies,
detects significant pauses and high-activity events, and generates a
narrative excerpt of the session content.

Records with unparsable timestamps are skipped with a warning; a missing
or malformed log file aborts the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report file path (overrides config)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Report format (text|json)")
	cmd.Flags().StringVar(&opts.Summarizer, "summarizer", "", "Summary method (frequency|keywords)")
	cmd.Flags().Float64Var(&opts.GapThreshold, "gap-threshold", 0, "Minimum pause reported as a gap, in seconds")
	cmd.Flags().IntVar(&opts.ActivityThreshold, "activity-threshold", 0, "Minimum word count flagged as high activity")
	cmd.Flags().BoolVar(&opts.Stdout, "stdout", false, "Print the report instead of writing a file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Append run metadata to the report")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_events", "When to fire webhook (on_events|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	logPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	// Load the event log
	events, err := eventlog.Load(logPath)
	if err != nil {
		return fmt.Errorf("loading event log: %w", err)
	}

	// Run the pipeline
	result := newAnalyzer(cfg).Analyze(events)

	// Per-record failures are warnings, never fatal
	for _, dropped := range result.Session.Dropped {
		fmt.Fprintf(os.Stderr, "Warning: skipping record %d due to bad timestamp: %q\n",
			dropped.Index, dropped.Timestamp)
	}

	report := output.NewReport(result, logPath)

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if opts.Stdout {
		if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting report: %w", err)
		}
	} else {
		if err := output.WriteFile(ctx, formatter, report, cfg.Output); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Narrative analysis report saved to %s\n", cfg.Output)
	}

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	return nil
}

// resolveConfig loads the configuration and applies CLI overrides.
func resolveConfig(ctx context.Context, opts *AnalyzeOptions) (*config.Config, error) {
	cfg, err := config.Resolve(ctx, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Summarizer != "" {
		cfg.Summary.Method = opts.Summarizer
	}
	if opts.GapThreshold > 0 {
		cfg.Thresholds.GapSeconds = opts.GapThreshold
	}
	if opts.ActivityThreshold > 0 {
		cfg.Thresholds.Activity = opts.ActivityThreshold
	}

	// Re-validate after overrides (catches e.g. a bad --summarizer)
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}

	return cfg, nil
}

// newAnalyzer builds the pipeline from configuration.
func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	sumCfg := summarize.Config{
		Sentences:         cfg.Summary.Sentences,
		MaxSentenceTokens: cfg.Summary.MaxSentenceTokens,
		ExtraStopWords:    cfg.Summary.StopWords,
	}

	var summarizer summarize.Summarizer
	switch cfg.Summary.Method {
	case config.SummaryMethodKeywords:
		summarizer = summarize.NewKeywordJoin(sumCfg)
	default:
		summarizer = summarize.NewFrequencyExtractive(nil, sumCfg)
	}

	return analyzer.New(
		analyzer.WithGapThreshold(time.Duration(cfg.Thresholds.GapSeconds*float64(time.Second))),
		analyzer.WithActivityThreshold(cfg.Thresholds.Activity),
		analyzer.WithTopWords(cfg.Summary.TopWords),
		analyzer.WithSummarizer(summarizer),
	)
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
	}

	switch opts.Format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown format %q (use text or json)", opts.Format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasKeyEvents()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnEvents
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for this report.
func shouldFireWebhook(trigger config.WebhookTrigger, hasKeyEvents bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnEvents:
		return hasKeyEvents
	default:
		// Default to on_events
		return hasKeyEvents
	}
}
