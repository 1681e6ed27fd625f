package eventlog

import "time"

// ClockLayout is the accepted time-of-day layout. Go's parser accepts an
// optional fractional second after the seconds field, so the single layout
// covers both HH:MM:SS and HH:MM:SS.ffffff.
const ClockLayout = "15:04:05"

// ReportClockLayout renders a clock time with millisecond precision for
// report output.
const ReportClockLayout = "15:04:05.000"

// ParseClock parses a time-of-day string in HH:MM:SS[.ffffff] form.
// The result is day-relative only; two events more than 24h apart cannot
// be distinguished (a limitation inherited from the source format).
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, &TimeParseError{Value: s, Err: err}
	}
	return t, nil
}
