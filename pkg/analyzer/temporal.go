package analyzer

import (
	"sort"
	"time"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

// Normalize parses each record's timestamp and returns the session of
// valid events sorted chronologically. Records whose timestamps match
// neither accepted layout are dropped and reported, never fatal.
func Normalize(events []eventlog.DetectionEvent) Session {
	session := Session{
		Events: make([]eventlog.DetectionEvent, 0, len(events)),
	}

	for i, ev := range events {
		clock, err := eventlog.ParseClock(ev.Timestamp)
		if err != nil {
			session.Dropped = append(session.Dropped, DroppedRecord{
				Index:     i,
				Timestamp: ev.Timestamp,
				Err:       err,
			})
			continue
		}
		ev.Clock = clock
		session.Events = append(session.Events, ev)
	}

	SortByTime(session.Events)
	return session
}

// SortByTime stable-sorts events ascending by parsed clock time in place.
func SortByTime(events []eventlog.DetectionEvent) {
	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Clock.Before(events[b].Clock)
	})
}

// SessionSpan computes the time extent of a sorted session. The second
// return value is false when there are no events to measure.
func SessionSpan(events []eventlog.DetectionEvent) (Span, bool) {
	if len(events) == 0 {
		return Span{}, false
	}

	first := events[0].Clock
	last := events[len(events)-1].Clock
	return Span{
		Start:    first,
		End:      last,
		Duration: last.Sub(first),
	}, true
}

// DetectGaps reports every adjacent pair of sorted events separated by at
// least the threshold.
func DetectGaps(events []eventlog.DetectionEvent, threshold time.Duration) []GapEvent {
	var gaps []GapEvent

	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		delta := cur.Clock.Sub(prev.Clock)
		if delta >= threshold {
			gaps = append(gaps, GapEvent{
				From:  prev.Timestamp,
				To:    cur.Timestamp,
				Delta: delta,
			})
		}
	}

	return gaps
}

// DetectHighActivity reports every event whose de-duplicated word count is
// at or above the threshold.
func DetectHighActivity(events []eventlog.DetectionEvent, threshold int) []ActivityEvent {
	var activity []ActivityEvent

	for _, ev := range events {
		if ev.NonDuplicateCount >= threshold {
			activity = append(activity, ActivityEvent{
				Timestamp: ev.Timestamp,
				Count:     ev.NonDuplicateCount,
			})
		}
	}

	return activity
}

// KeyEvents interleaves activity and gap findings in per-event scan order:
// for each event, its activity flag first, then the gap separating it from
// the previous event. The report renders findings in exactly this order.
func KeyEvents(events []eventlog.DetectionEvent, gapThreshold time.Duration, activityThreshold int) []KeyEvent {
	var findings []KeyEvent

	for i, ev := range events {
		if ev.NonDuplicateCount >= activityThreshold {
			findings = append(findings, KeyEvent{Activity: &ActivityEvent{
				Timestamp: ev.Timestamp,
				Count:     ev.NonDuplicateCount,
			}})
		}

		if i > 0 {
			prev := events[i-1]
			delta := ev.Clock.Sub(prev.Clock)
			if delta >= gapThreshold {
				findings = append(findings, KeyEvent{Gap: &GapEvent{
					From:  prev.Timestamp,
					To:    ev.Timestamp,
					Delta: delta,
				}})
			}
		}
	}

	return findings
}
