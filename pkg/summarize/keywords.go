package summarize

import (
	"sort"
	"strings"
)

// KeywordJoin describes session content with a single line built from the
// most frequently detected words. The lightweight alternative to the
// extractive summarizer.
type KeywordJoin struct {
	topK int
}

// NewKeywordJoin creates a keyword-join summarizer.
func NewKeywordJoin(cfg Config) *KeywordJoin {
	cfg.applyDefaults()
	return &KeywordJoin{topK: cfg.TopKeywords}
}

// Name returns the method name.
func (s *KeywordJoin) Name() string {
	return "keywords"
}

// Summarize returns a one-line inferred-content description.
func (s *KeywordJoin) Summarize(words []string) string {
	if len(words) == 0 {
		return InsufficientData
	}

	top := topByCount(words, s.topK)
	return "Based on the most frequently detected words, the content was likely related to: " +
		strings.Join(top, ", ") + "."
}

// topByCount returns the k most frequent words, ties broken by first
// occurrence so the result is deterministic.
func topByCount(words []string, k int) []string {
	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	order := make([]string, 0, len(words))

	for i, w := range words {
		if _, seen := counts[w]; !seen {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > k {
		order = order[:k]
	}
	return order
}
