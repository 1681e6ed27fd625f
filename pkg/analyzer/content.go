package analyzer

import (
	"sort"
	"strings"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

// WordStats aggregates the session's word content.
type WordStats struct {
	// Flat is the concatenation, in session order, of every event's words.
	Flat []string

	// Counts maps each lowercase word to its occurrence count.
	Counts map[string]int

	// TotalRead is the sum of every event's de-duplicated word count, the
	// session-level word volume metric (distinct from len(Counts)).
	TotalRead int

	// firstSeen records each word's first position in Flat for
	// deterministic tie-breaking.
	firstSeen map[string]int
}

// MergeWords concatenates every event's word stream in session order.
func MergeWords(events []eventlog.DetectionEvent) []string {
	var flat []string
	for _, ev := range events {
		flat = append(flat, ev.Words...)
	}
	return flat
}

// TotalWordsRead sums every event's de-duplicated word count.
func TotalWordsRead(events []eventlog.DetectionEvent) int {
	total := 0
	for _, ev := range events {
		total += ev.NonDuplicateCount
	}
	return total
}

// NewWordStats builds the word frequency table over a sorted session.
func NewWordStats(events []eventlog.DetectionEvent) *WordStats {
	stats := &WordStats{
		Flat:      MergeWords(events),
		Counts:    make(map[string]int),
		TotalRead: TotalWordsRead(events),
		firstSeen: make(map[string]int),
	}

	for i, word := range stats.Flat {
		word = strings.ToLower(word)
		if _, seen := stats.Counts[word]; !seen {
			stats.firstSeen[word] = i
		}
		stats.Counts[word]++
	}

	return stats
}

// UniqueWords returns the number of distinct words in the session.
func (s *WordStats) UniqueWords() int {
	return len(s.Counts)
}

// TopWords returns at most k words by descending count, ties broken by
// first occurrence in the merged stream so the result is deterministic.
func (s *WordStats) TopWords(k int) []string {
	words := make([]string, 0, len(s.Counts))
	for word := range s.Counts {
		words = append(words, word)
	}

	sort.SliceStable(words, func(a, b int) bool {
		if s.Counts[words[a]] != s.Counts[words[b]] {
			return s.Counts[words[a]] > s.Counts[words[b]]
		}
		return s.firstSeen[words[a]] < s.firstSeen[words[b]]
	})

	if len(words) > k {
		words = words[:k]
	}
	return words
}
