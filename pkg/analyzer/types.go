// Package analyzer implements the OCR session analysis pipeline: timestamp
// normalization, chronological ordering, session metrics, key-event
// detection, and word aggregation.
package analyzer

import (
	"time"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

// Session is the chronological sequence of valid detection events in one
// log, with the records dropped during normalization.
type Session struct {
	// Events is sorted ascending by parsed clock time (stable).
	Events []eventlog.DetectionEvent `json:"events"`

	// Dropped lists records rejected for unparsable timestamps.
	Dropped []DroppedRecord `json:"dropped,omitempty"`
}

// DroppedRecord identifies a record skipped due to an unparsable timestamp.
type DroppedRecord struct {
	// Index is the record's position in the source log.
	Index int `json:"index"`

	// Timestamp is the offending raw value.
	Timestamp string `json:"timestamp"`

	// Err is the parse failure.
	Err error `json:"-"`
}

// Span describes the session's time extent.
type Span struct {
	// Start is the first event's clock time.
	Start time.Time `json:"start"`

	// End is the last event's clock time. Never earlier than Start.
	End time.Time `json:"end"`

	// Duration is End minus Start; zero for a single-event session.
	Duration time.Duration `json:"duration"`
}

// Seconds returns the span duration in seconds.
func (s Span) Seconds() float64 {
	return s.Duration.Seconds()
}

// GapEvent describes a pause between two consecutive detections at or
// above the gap threshold, implying a pause or content switch.
type GapEvent struct {
	// From is the earlier event's raw timestamp.
	From string `json:"from"`

	// To is the later event's raw timestamp.
	To string `json:"to"`

	// Delta is the time between the two detections.
	Delta time.Duration `json:"delta"`
}

// Seconds returns the gap length in seconds.
func (g GapEvent) Seconds() float64 {
	return g.Delta.Seconds()
}

// ActivityEvent flags a detection whose de-duplicated word count reached
// the activity threshold, implying a dense document.
type ActivityEvent struct {
	// Timestamp is the event's raw timestamp.
	Timestamp string `json:"timestamp"`

	// Count is the event's de-duplicated word count.
	Count int `json:"count"`
}

// KeyEvent is one finding in per-event scan order. Exactly one of Gap or
// Activity is set.
type KeyEvent struct {
	Gap      *GapEvent      `json:"gap,omitempty"`
	Activity *ActivityEvent `json:"activity,omitempty"`
}
