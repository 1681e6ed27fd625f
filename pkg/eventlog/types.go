// Package eventlog provides loading and validation of OCR detection-event logs.
package eventlog

import "time"

// DetectionEvent is one logged OCR-positive frame with its derived word statistics.
// Events are written by the capture process and immutable once logged; the
// analysis pipeline only reads them and annotates the parsed clock time.
type DetectionEvent struct {
	// Timestamp is the wall-clock time of day as written by the capture
	// process, HH:MM:SS with an optional sub-second fraction.
	Timestamp string `json:"timestamp"`

	// TotalWords is the raw token count before consecutive-duplicate collapse.
	TotalWords int `json:"total_words_detected"`

	// NonDuplicateCount is the token count after consecutive duplicates
	// were removed. Never exceeds TotalWords.
	NonDuplicateCount int `json:"non_duplicate_count"`

	// Keywords are the frequency-ranked top words for this frame (at most 5).
	Keywords []string `json:"keywords"`

	// Words is the cleaned per-frame word stream, consecutive duplicates
	// removed. Its length equals NonDuplicateCount.
	Words []string `json:"detected_words_list"`

	// Clock is the parsed Timestamp, populated during normalization.
	// Day-relative only: the source format carries no date component.
	Clock time.Time `json:"-"`
}
