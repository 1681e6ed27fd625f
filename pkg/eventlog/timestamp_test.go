package eventlog

import (
	"errors"
	"testing"
)

func TestParseClock_WithFraction(t *testing.T) {
	ts, err := ParseClock("09:15:42.123456")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}

	if ts.Hour() != 9 || ts.Minute() != 15 || ts.Second() != 42 {
		t.Errorf("ParseClock() = %v, want 09:15:42", ts)
	}
	if ts.Nanosecond() != 123456000 {
		t.Errorf("Nanosecond() = %d, want 123456000", ts.Nanosecond())
	}
}

func TestParseClock_WithoutFraction(t *testing.T) {
	ts, err := ParseClock("23:59:59")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}

	if ts.Hour() != 23 || ts.Minute() != 59 || ts.Second() != 59 {
		t.Errorf("ParseClock() = %v, want 23:59:59", ts)
	}
}

func TestParseClock_ShortFraction(t *testing.T) {
	// The capture process writes millisecond fractions as well.
	ts, err := ParseClock("09:00:00.500")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}

	if ts.Nanosecond() != 500000000 {
		t.Errorf("Nanosecond() = %d, want 500000000", ts.Nanosecond())
	}
}

func TestParseClock_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not a time",
		"25:00:00",
		"09:00",
		"09-00-00",
		"2024-01-15 09:00:00",
	}

	for _, input := range cases {
		_, err := ParseClock(input)
		if err == nil {
			t.Errorf("ParseClock(%q) expected error", input)
			continue
		}

		var tpe *TimeParseError
		if !errors.As(err, &tpe) {
			t.Errorf("ParseClock(%q) error = %T, want *TimeParseError", input, err)
		}
	}
}

func TestParseClock_Ordering(t *testing.T) {
	early, err := ParseClock("09:00:00.000")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}
	late, err := ParseClock("09:00:12")
	if err != nil {
		t.Fatalf("ParseClock() error = %v", err)
	}

	if !early.Before(late) {
		t.Errorf("expected %v before %v", early, late)
	}
	if got := late.Sub(early).Seconds(); got != 12.0 {
		t.Errorf("Sub() = %v seconds, want 12.0", got)
	}
}
