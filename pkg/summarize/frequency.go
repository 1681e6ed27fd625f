package summarize

import (
	"sort"
	"strings"
	"unicode"
)

// FrequencyExtractive is an extractive summarizer. It reconstructs a
// pseudo-document from the word stream, scores sentence-like units by the
// normalized frequency of their content words, and selects the top units.
type FrequencyExtractive struct {
	seg  Segmenter
	cfg  Config
	stop map[string]struct{}
}

// NewFrequencyExtractive creates a frequency-weighted extractive summarizer.
// A nil segmenter falls back to the rule-based one.
func NewFrequencyExtractive(seg Segmenter, cfg Config) *FrequencyExtractive {
	if seg == nil {
		seg = RuleSegmenter{}
	}
	cfg.applyDefaults()

	return &FrequencyExtractive{
		seg:  seg,
		cfg:  cfg,
		stop: newStopWordSet(cfg.ExtraStopWords),
	}
}

// Name returns the method name.
func (s *FrequencyExtractive) Name() string {
	return "frequency"
}

// Summarize produces the narrative excerpt. With fewer sentence-like units
// than the configured selection size, the reconstructed text is returned
// verbatim without scoring. Selected units are joined in descending score
// order, not document order.
func (s *FrequencyExtractive) Summarize(words []string) string {
	if len(words) == 0 {
		return InsufficientData
	}

	text := strings.Join(words, " ")
	sentences := s.seg.Sentences(text)

	if len(sentences) < s.cfg.Sentences {
		return strings.Join(sentences, " ")
	}

	frequencies := s.contentFrequencies(text)

	// Score each unit as the sum of its content words' normalized
	// frequencies. Units at or above the raw token cutoff are OCR noise
	// and never selected.
	type scoredSentence struct {
		index int
		score float64
	}
	var candidates []scoredSentence

	for i, sentence := range sentences {
		if len(strings.Split(sentence, " ")) >= s.cfg.MaxSentenceTokens {
			continue
		}

		score := 0.0
		hasContent := false
		for _, token := range s.seg.Words(strings.ToLower(sentence)) {
			if f, ok := frequencies[token]; ok {
				score += f
				hasContent = true
			}
		}
		if hasContent {
			candidates = append(candidates, scoredSentence{index: i, score: score})
		}
	}

	// Descending score; the stable sort keeps first-appearance order on ties.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	n := s.cfg.Sentences
	if len(candidates) < n {
		n = len(candidates)
	}

	selected := make([]string, 0, n)
	for _, c := range candidates[:n] {
		selected = append(selected, sentences[c.index])
	}

	return strings.Join(selected, " ")
}

// contentFrequencies builds the normalized frequency table over content
// words: lowercase, alphanumeric, non-stop-word tokens, each count divided
// by the maximum count observed.
func (s *FrequencyExtractive) contentFrequencies(text string) map[string]float64 {
	frequencies := make(map[string]float64)

	for _, token := range s.seg.Words(strings.ToLower(text)) {
		if !isAlphanumeric(token) {
			continue
		}
		if _, stop := s.stop[token]; stop {
			continue
		}
		frequencies[token]++
	}

	// Divisor of 1 when the table is empty
	max := 1.0
	for _, count := range frequencies {
		if count > max {
			max = count
		}
	}
	for word := range frequencies {
		frequencies[word] /= max
	}

	return frequencies
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
