// Package config provides configuration loading and validation for ocrsummary.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
// All fields are optional; zero values are filled with defaults.
type Config struct {
	// Output is the path the narrative report is written to.
	Output string `yaml:"output,omitempty"`

	// Thresholds tunes gap and high-activity detection.
	Thresholds ThresholdConfig `yaml:"thresholds,omitempty"`

	// Summary tunes narrative summary generation.
	Summary SummaryConfig `yaml:"summary,omitempty"`

	// Webhooks are optional endpoints the finished report is posted to.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// ThresholdConfig tunes key-event detection.
type ThresholdConfig struct {
	// GapSeconds is the minimum pause between consecutive detections that
	// is reported as a gap.
	GapSeconds float64 `yaml:"gap_seconds,omitempty"`

	// Activity is the minimum de-duplicated word count of a single event
	// that is flagged as high activity.
	Activity int `yaml:"activity,omitempty"`
}

// Accepted summarizer selections.
const (
	SummaryMethodFrequency = "frequency"
	SummaryMethodKeywords  = "keywords"
)

// SummaryConfig tunes narrative summary generation.
type SummaryConfig struct {
	// Method selects the summarizer: "frequency" (extractive sentence
	// scoring) or "keywords" (top-word join).
	Method string `yaml:"method,omitempty"`

	// Sentences is the number of sentence-like units the extractive
	// summarizer selects.
	Sentences int `yaml:"sentences,omitempty"`

	// TopWords is how many top content words the report lists.
	TopWords int `yaml:"top_words,omitempty"`

	// MaxSentenceTokens excludes sentence-like units at or above this raw
	// token count from scoring (OCR noise/fragmentation guard).
	MaxSentenceTokens int `yaml:"max_sentence_tokens,omitempty"`

	// StopWords are additional stop words merged into the built-in list.
	StopWords []string `yaml:"stop_words,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnEvents fires only when key events were detected (default).
	WebhookTriggerOnEvents WebhookTrigger = "on_events"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending the report.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_events" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
