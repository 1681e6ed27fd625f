package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirudhjbabu1/ocrsummary/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an ocrsummary configuration file without running analysis.

Checks:
  - YAML syntax
  - Threshold values
  - Summary method and tuning
  - Webhook definitions`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Output:             %s\n", cfg.Output)
	fmt.Fprintf(out, "  Gap threshold:      %.1fs\n", cfg.Thresholds.GapSeconds)
	fmt.Fprintf(out, "  Activity threshold: %d words\n", cfg.Thresholds.Activity)
	fmt.Fprintf(out, "  Summary method:     %s\n", cfg.Summary.Method)

	if len(cfg.Webhooks) > 0 {
		fmt.Fprintf(out, "\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, wh.Trigger, name)
		}
	}

	return nil
}
