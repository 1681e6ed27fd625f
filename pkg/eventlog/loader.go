package eventlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// MaxKeywords is the maximum number of keywords the capture process
// records per frame.
const MaxKeywords = 5

// Load reads the event log at path and returns the raw record sequence in
// file order. It returns a *NotFoundError if the path does not resolve and
// a *MalformedInputError if the content is not a well-formed event
// collection. Timestamps are not parsed here; see analyzer.Normalize.
func Load(path string) ([]DetectionEvent, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading event log: %w", err)
	}

	var raw []rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedInputError{Path: path, Err: err}
	}

	events := make([]DetectionEvent, 0, len(raw))
	for i := range raw {
		ev, err := raw[i].toEvent()
		if err != nil {
			return nil, &MalformedInputError{Path: path, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		events = append(events, ev)
	}

	return events, nil
}

// rawEvent mirrors DetectionEvent with pointer fields so that missing
// required fields can be distinguished from zero values.
type rawEvent struct {
	Timestamp         *string   `json:"timestamp"`
	TotalWords        *int      `json:"total_words_detected"`
	NonDuplicateCount *int      `json:"non_duplicate_count"`
	Keywords          *[]string `json:"keywords"`
	Words             *[]string `json:"detected_words_list"`
}

// toEvent validates the structural contract and converts to a DetectionEvent.
// Records missing required fields are rejected rather than defaulted.
func (r *rawEvent) toEvent() (DetectionEvent, error) {
	switch {
	case r.Timestamp == nil:
		return DetectionEvent{}, errors.New(`missing required field "timestamp"`)
	case r.TotalWords == nil:
		return DetectionEvent{}, errors.New(`missing required field "total_words_detected"`)
	case r.NonDuplicateCount == nil:
		return DetectionEvent{}, errors.New(`missing required field "non_duplicate_count"`)
	case r.Keywords == nil:
		return DetectionEvent{}, errors.New(`missing required field "keywords"`)
	case r.Words == nil:
		return DetectionEvent{}, errors.New(`missing required field "detected_words_list"`)
	}

	if *r.TotalWords < 0 {
		return DetectionEvent{}, fmt.Errorf("total_words_detected is negative (%d)", *r.TotalWords)
	}
	if *r.NonDuplicateCount < 0 {
		return DetectionEvent{}, fmt.Errorf("non_duplicate_count is negative (%d)", *r.NonDuplicateCount)
	}
	if *r.NonDuplicateCount > *r.TotalWords {
		return DetectionEvent{}, fmt.Errorf("non_duplicate_count %d exceeds total_words_detected %d",
			*r.NonDuplicateCount, *r.TotalWords)
	}
	if len(*r.Keywords) > MaxKeywords {
		return DetectionEvent{}, fmt.Errorf("keywords has %d entries (maximum %d)",
			len(*r.Keywords), MaxKeywords)
	}

	return DetectionEvent{
		Timestamp:         *r.Timestamp,
		TotalWords:        *r.TotalWords,
		NonDuplicateCount: *r.NonDuplicateCount,
		Keywords:          *r.Keywords,
		Words:             *r.Words,
	}, nil
}
