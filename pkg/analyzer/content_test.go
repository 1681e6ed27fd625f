package analyzer

import (
	"reflect"
	"testing"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
)

func TestMergeWords_SessionOrder(t *testing.T) {
	sorted := normalized(t,
		event(t, "09:00:00", 2, "alpha", "beta"),
		event(t, "09:00:01", 2, "gamma", "delta"),
	)

	got := MergeWords(sorted)
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeWords() = %v, want %v", got, want)
	}
}

func TestTotalWordsRead(t *testing.T) {
	// The metric sums non_duplicate_count, independent of word content.
	events := []eventlog.DetectionEvent{
		{Timestamp: "09:00:00", NonDuplicateCount: 10},
		{Timestamp: "09:00:01", NonDuplicateCount: 5},
		{Timestamp: "09:00:02", NonDuplicateCount: 55},
	}

	if got := TotalWordsRead(events); got != 70 {
		t.Errorf("TotalWordsRead() = %d, want 70", got)
	}
}

func TestTotalWordsRead_Empty(t *testing.T) {
	if got := TotalWordsRead(nil); got != 0 {
		t.Errorf("TotalWordsRead(nil) = %d, want 0", got)
	}
}

func TestNewWordStats(t *testing.T) {
	sorted := normalized(t,
		event(t, "09:00:00", 3, "invoice", "Total", "invoice"),
		event(t, "09:00:01", 2, "due", "total"),
	)

	stats := NewWordStats(sorted)

	if stats.TotalRead != 5 {
		t.Errorf("TotalRead = %d, want 5", stats.TotalRead)
	}
	if stats.UniqueWords() != 3 {
		t.Errorf("UniqueWords() = %d, want 3 (invoice, total, due)", stats.UniqueWords())
	}
	if stats.Counts["invoice"] != 2 {
		t.Errorf("Counts[invoice] = %d, want 2", stats.Counts["invoice"])
	}
	if stats.Counts["total"] != 2 {
		t.Errorf("Counts[total] = %d, want 2 (case-folded)", stats.Counts["total"])
	}
}

func TestWordStats_TopWords(t *testing.T) {
	sorted := normalized(t,
		event(t, "09:00:00", 6, "b", "a", "b", "c", "a", "b"),
	)

	stats := NewWordStats(sorted)

	got := stats.TopWords(2)
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords(2) = %v, want %v", got, want)
	}
}

func TestWordStats_TopWords_TieBreakFirstSeen(t *testing.T) {
	// "x" and "y" both occur twice; "x" appeared first in the stream.
	sorted := normalized(t,
		event(t, "09:00:00", 5, "x", "y", "y", "x", "z"),
	)

	stats := NewWordStats(sorted)

	got := stats.TopWords(3)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords(3) = %v, want %v", got, want)
	}
}

func TestWordStats_TopWords_Deterministic(t *testing.T) {
	sorted := normalized(t,
		event(t, "09:00:00", 6, "m", "n", "o", "m", "n", "o"),
	)

	stats := NewWordStats(sorted)

	first := stats.TopWords(3)
	for i := 0; i < 10; i++ {
		if got := stats.TopWords(3); !reflect.DeepEqual(got, first) {
			t.Fatalf("TopWords() not deterministic: %v vs %v", got, first)
		}
	}
}

func TestWordStats_TopWords_FewerThanK(t *testing.T) {
	sorted := normalized(t, event(t, "09:00:00", 1, "only"))

	stats := NewWordStats(sorted)

	if got := stats.TopWords(10); len(got) != 1 {
		t.Errorf("TopWords(10) = %v, want 1 entry", got)
	}
}
