package analyzer

import (
	"testing"
	"time"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

func event(t *testing.T, timestamp string, nonDup int, words ...string) eventlog.DetectionEvent {
	t.Helper()

	return eventlog.DetectionEvent{
		Timestamp:         timestamp,
		TotalWords:        nonDup,
		NonDuplicateCount: nonDup,
		Words:             words,
	}
}

func normalized(t *testing.T, events ...eventlog.DetectionEvent) []eventlog.DetectionEvent {
	t.Helper()

	session := Normalize(events)
	if len(session.Dropped) != 0 {
		t.Fatalf("Normalize() dropped %d records, want 0", len(session.Dropped))
	}
	return session.Events
}

func TestNormalize_DropsBadTimestamps(t *testing.T) {
	events := []eventlog.DetectionEvent{
		event(t, "09:00:02", 1, "a"),
		event(t, "not a time", 1, "b"),
		event(t, "09:00:00", 1, "c"),
	}

	session := Normalize(events)

	if len(session.Events) != 2 {
		t.Fatalf("valid events = %d, want 2", len(session.Events))
	}
	if len(session.Dropped) != 1 {
		t.Fatalf("dropped = %d, want 1", len(session.Dropped))
	}

	dropped := session.Dropped[0]
	if dropped.Index != 1 {
		t.Errorf("Dropped.Index = %d, want 1", dropped.Index)
	}
	if dropped.Timestamp != "not a time" {
		t.Errorf("Dropped.Timestamp = %q, want %q", dropped.Timestamp, "not a time")
	}
	if dropped.Err == nil {
		t.Error("Dropped.Err should carry the parse failure")
	}

	// Remaining events are sorted chronologically
	if session.Events[0].Timestamp != "09:00:00" {
		t.Errorf("first event = %q, want 09:00:00", session.Events[0].Timestamp)
	}
	if session.Events[1].Timestamp != "09:00:02" {
		t.Errorf("second event = %q, want 09:00:02", session.Events[1].Timestamp)
	}
}

func TestNormalize_StableForEqualTimestamps(t *testing.T) {
	events := []eventlog.DetectionEvent{
		event(t, "09:00:00", 1, "first"),
		event(t, "09:00:00", 1, "second"),
	}

	sorted := normalized(t, events...)
	if sorted[0].Words[0] != "first" || sorted[1].Words[0] != "second" {
		t.Errorf("sort is not stable: %v", sorted)
	}
}

func TestSessionSpan(t *testing.T) {
	sorted := normalized(t,
		event(t, "09:00:00.000", 1, "a"),
		event(t, "09:00:03.000", 1, "b"),
		event(t, "09:00:12.000", 1, "c"),
	)

	span, ok := SessionSpan(sorted)
	if !ok {
		t.Fatal("SessionSpan() ok = false, want true")
	}

	if span.Seconds() != 12.0 {
		t.Errorf("Seconds() = %v, want 12.0", span.Seconds())
	}
	if span.End.Before(span.Start) {
		t.Error("End must never be earlier than Start")
	}
}

func TestSessionSpan_SingleEvent(t *testing.T) {
	sorted := normalized(t, event(t, "09:00:00", 1, "a"))

	span, ok := SessionSpan(sorted)
	if !ok {
		t.Fatal("SessionSpan() ok = false, want true")
	}
	if span.Duration != 0 {
		t.Errorf("Duration = %v, want 0 for single event", span.Duration)
	}
	if !span.Start.Equal(span.End) {
		t.Error("Start and End must be equal for a single event")
	}
}

func TestSessionSpan_Empty(t *testing.T) {
	if _, ok := SessionSpan(nil); ok {
		t.Error("SessionSpan(nil) ok = true, want false")
	}
}

func TestDetectGaps(t *testing.T) {
	// Events at T, T+2s, T+8s with a 5s threshold: exactly one gap,
	// between the 2nd and 3rd events, of 6 seconds.
	sorted := normalized(t,
		event(t, "10:00:00", 1, "a"),
		event(t, "10:00:02", 1, "b"),
		event(t, "10:00:08", 1, "c"),
	)

	gaps := DetectGaps(sorted, 5*time.Second)

	if len(gaps) != 1 {
		t.Fatalf("gaps = %d, want 1", len(gaps))
	}
	if gaps[0].From != "10:00:02" || gaps[0].To != "10:00:08" {
		t.Errorf("gap between %q and %q, want 10:00:02 and 10:00:08", gaps[0].From, gaps[0].To)
	}
	if gaps[0].Seconds() != 6.0 {
		t.Errorf("Seconds() = %v, want 6.0", gaps[0].Seconds())
	}
}

func TestDetectGaps_ThresholdIsInclusive(t *testing.T) {
	sorted := normalized(t,
		event(t, "10:00:00", 1, "a"),
		event(t, "10:00:05", 1, "b"),
	)

	gaps := DetectGaps(sorted, 5*time.Second)
	if len(gaps) != 1 {
		t.Errorf("gaps = %d, want 1 (delta equal to threshold is a gap)", len(gaps))
	}
}

func TestDetectGaps_None(t *testing.T) {
	sorted := normalized(t,
		event(t, "10:00:00", 1, "a"),
		event(t, "10:00:01", 1, "b"),
		event(t, "10:00:02", 1, "c"),
	)

	if gaps := DetectGaps(sorted, 5*time.Second); len(gaps) != 0 {
		t.Errorf("gaps = %d, want 0", len(gaps))
	}
}

func TestDetectHighActivity_Boundary(t *testing.T) {
	sorted := normalized(t,
		event(t, "10:00:00", 49, "a"),
		event(t, "10:00:01", 50, "b"),
	)

	activity := DetectHighActivity(sorted, 50)

	if len(activity) != 1 {
		t.Fatalf("activity = %d, want 1 (49 below threshold, 50 at threshold)", len(activity))
	}
	if activity[0].Timestamp != "10:00:01" {
		t.Errorf("Timestamp = %q, want 10:00:01", activity[0].Timestamp)
	}
	if activity[0].Count != 50 {
		t.Errorf("Count = %d, want 50", activity[0].Count)
	}
}

func TestKeyEvents_ScanOrder(t *testing.T) {
	// For each event the activity flag comes first, then the gap
	// separating it from the previous event.
	sorted := normalized(t,
		event(t, "10:00:00", 10, "a"),
		event(t, "10:00:10", 60, "b"),
	)

	findings := KeyEvents(sorted, 5*time.Second, 50)

	if len(findings) != 2 {
		t.Fatalf("findings = %d, want 2", len(findings))
	}
	if findings[0].Activity == nil {
		t.Error("findings[0] should be the activity flag")
	}
	if findings[1].Gap == nil {
		t.Error("findings[1] should be the gap")
	}
}
