package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultOutput            = "ocr_narrative_summary.txt"
	DefaultGapSeconds        = 5.0
	DefaultActivity          = 50
	DefaultSummaryMethod     = SummaryMethodFrequency
	DefaultSummarySentences  = 4
	DefaultTopWords          = 10
	DefaultMaxSentenceTokens = 30
	DefaultWebhookTimeout    = 10 * time.Second
)

// Environment variable names.
const (
	EnvOutput        = "OCRSUMMARY_OUTPUT"
	EnvSummaryMethod = "OCRSUMMARY_SUMMARIZER"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: DefaultOutput,
		Thresholds: ThresholdConfig{
			GapSeconds: DefaultGapSeconds,
			Activity:   DefaultActivity,
		},
		Summary: SummaryConfig{
			Method:            DefaultSummaryMethod,
			Sentences:         DefaultSummarySentences,
			TopWords:          DefaultTopWords,
			MaxSentenceTokens: DefaultMaxSentenceTokens,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
	if method := os.Getenv(EnvSummaryMethod); method != "" {
		c.Summary.Method = method
	}
}
