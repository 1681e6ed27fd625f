package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the configuration for a run: the validated file at path
// when given, otherwise defaults with environment overrides applied.
func Resolve(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills optional defaults.
func Validate(cfg *Config) error {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if err := validateThresholds(&cfg.Thresholds); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}

	if err := validateSummary(&cfg.Summary); err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateThresholds(t *ThresholdConfig) error {
	if t.GapSeconds == 0 {
		t.GapSeconds = DefaultGapSeconds
	}
	if t.GapSeconds < 0 {
		return fmt.Errorf("gap_seconds must be positive, got %v", t.GapSeconds)
	}

	if t.Activity == 0 {
		t.Activity = DefaultActivity
	}
	if t.Activity < 0 {
		return fmt.Errorf("activity must be positive, got %d", t.Activity)
	}

	return nil
}

func validateSummary(s *SummaryConfig) error {
	if s.Method == "" {
		s.Method = DefaultSummaryMethod
	}
	switch s.Method {
	case SummaryMethodFrequency, SummaryMethodKeywords:
		// Valid
	default:
		return fmt.Errorf("invalid method %q (must be frequency or keywords)", s.Method)
	}

	if s.Sentences == 0 {
		s.Sentences = DefaultSummarySentences
	}
	if s.Sentences < 0 {
		return fmt.Errorf("sentences must be positive, got %d", s.Sentences)
	}

	if s.TopWords == 0 {
		s.TopWords = DefaultTopWords
	}
	if s.TopWords < 0 {
		return fmt.Errorf("top_words must be positive, got %d", s.TopWords)
	}

	if s.MaxSentenceTokens == 0 {
		s.MaxSentenceTokens = DefaultMaxSentenceTokens
	}
	if s.MaxSentenceTokens < 0 {
		return fmt.Errorf("max_sentence_tokens must be positive, got %d", s.MaxSentenceTokens)
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerOnEvents, WebhookTriggerAlways, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be on_events, always, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerOnEvents
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
