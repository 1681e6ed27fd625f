// Package summarize generates narrative summaries from aggregated OCR words.
package summarize

// InsufficientData is returned when the word stream is empty and no
// narrative can be generated. Never an empty string.
const InsufficientData = "Not enough coherent text detected to generate a narrative summary."

// Summarizer produces a short narrative representative of a session's
// flat word stream. Implementations are pure with respect to their input.
type Summarizer interface {
	// Summarize returns the narrative excerpt for the given words.
	Summarize(words []string) string

	// Name returns the method name (frequency, keywords).
	Name() string
}

// Segmenter splits reconstructed text into sentence-like units and word
// tokens. A lightweight rule-based implementation stands in for a full NLP
// toolkit without changing the scoring algorithm.
type Segmenter interface {
	// Sentences splits text into sentence-like units.
	Sentences(text string) []string

	// Words splits text into word tokens.
	Words(text string) []string
}

// Config holds tuning shared by the summarizers.
type Config struct {
	// Sentences is the number of sentence-like units the extractive
	// summarizer selects (default 4).
	Sentences int

	// MaxSentenceTokens excludes sentence-like units at or above this raw
	// token count from scoring, treating them as OCR noise (default 30).
	MaxSentenceTokens int

	// TopKeywords is how many words the keyword summarizer joins (default 5).
	TopKeywords int

	// ExtraStopWords are merged into the built-in stop-word list.
	ExtraStopWords []string
}

// DefaultConfig returns the default summarizer configuration.
func DefaultConfig() Config {
	return Config{
		Sentences:         4,
		MaxSentenceTokens: 30,
		TopKeywords:       5,
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Sentences <= 0 {
		c.Sentences = def.Sentences
	}
	if c.MaxSentenceTokens <= 0 {
		c.MaxSentenceTokens = def.MaxSentenceTokens
	}
	if c.TopKeywords <= 0 {
		c.TopKeywords = def.TopKeywords
	}
}
