package summarize

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeywordJoin_EmptyWords(t *testing.T) {
	s := NewKeywordJoin(DefaultConfig())

	got := s.Summarize(nil)
	if got != InsufficientData {
		t.Errorf("Summarize(nil) = %q, want insufficient-data message", got)
	}
}

func TestKeywordJoin_TopWordsInOrder(t *testing.T) {
	s := NewKeywordJoin(Config{TopKeywords: 3})

	words := []string{"invoice", "total", "invoice", "due", "invoice", "total"}

	got := s.Summarize(words)
	if !strings.Contains(got, "invoice, total, due") {
		t.Errorf("Summarize() = %q, want top words in frequency order", got)
	}
}

func TestKeywordJoin_FewerWordsThanK(t *testing.T) {
	s := NewKeywordJoin(Config{TopKeywords: 5})

	got := s.Summarize([]string{"single"})
	if !strings.Contains(got, "single") {
		t.Errorf("Summarize() = %q, want %q included", got, "single")
	}
}

func TestTopByCount(t *testing.T) {
	words := []string{"b", "a", "b", "c", "a", "b"}

	got := topByCount(words, 2)
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topByCount() = %v, want %v", got, want)
	}
}

func TestTopByCount_TieBreakFirstSeen(t *testing.T) {
	// "x" and "y" both occur twice; "x" appeared first.
	words := []string{"x", "y", "y", "x", "z"}

	got := topByCount(words, 3)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topByCount() = %v, want %v", got, want)
	}
}

func TestTopByCount_Deterministic(t *testing.T) {
	words := []string{"m", "n", "o", "m", "n", "o", "p"}

	first := topByCount(words, 3)
	for i := 0; i < 10; i++ {
		if got := topByCount(words, 3); !reflect.DeepEqual(got, first) {
			t.Fatalf("topByCount() not deterministic: %v vs %v", got, first)
		}
	}
}
