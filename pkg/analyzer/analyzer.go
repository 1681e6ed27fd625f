package analyzer

import (
	"time"

	"github.com/anirudhjbabu1/ocrsummary/pkg/eventlog"
	"github.com/anirudhjbabu1/ocrsummary/pkg/summarize"
)

// Default thresholds, matching the capture-side conventions.
const (
	DefaultGapThreshold      = 5 * time.Second
	DefaultActivityThreshold = 50
	DefaultTopWords          = 10
)

// Status is the terminal state of an analysis run. Insufficient data is a
// valid outcome, not a process failure.
type Status string

const (
	// StatusOK means the full pipeline produced a report.
	StatusOK Status = "ok"

	// StatusNoEvents means the log contained no detection events.
	StatusNoEvents Status = "no_events"

	// StatusNoValidTimes means no record survived timestamp normalization.
	StatusNoValidTimes Status = "no_valid_times"
)

// Analyzer runs the analysis pipeline over a loaded event log. All stages
// are synchronous pure functions over in-memory data; the analyzer holds
// no state between runs.
type Analyzer struct {
	gapThreshold      time.Duration
	activityThreshold int
	topWords          int
	summarizer        summarize.Summarizer
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithGapThreshold sets the minimum pause reported as a gap.
func WithGapThreshold(d time.Duration) Option {
	return func(a *Analyzer) {
		a.gapThreshold = d
	}
}

// WithActivityThreshold sets the minimum de-duplicated word count flagged
// as high activity.
func WithActivityThreshold(n int) Option {
	return func(a *Analyzer) {
		a.activityThreshold = n
	}
}

// WithTopWords sets how many top content words the result carries.
func WithTopWords(k int) Option {
	return func(a *Analyzer) {
		a.topWords = k
	}
}

// WithSummarizer swaps the narrative summarizer.
func WithSummarizer(s summarize.Summarizer) Option {
	return func(a *Analyzer) {
		a.summarizer = s
	}
}

// New creates an analyzer with default thresholds and the frequency
// extractive summarizer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		gapThreshold:      DefaultGapThreshold,
		activityThreshold: DefaultActivityThreshold,
		topWords:          DefaultTopWords,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.summarizer == nil {
		a.summarizer = summarize.NewFrequencyExtractive(nil, summarize.DefaultConfig())
	}

	return a
}

// Result is the complete analysis output.
type Result struct {
	// Status is the terminal state of the run.
	Status Status `json:"status"`

	// Session is the normalized, chronologically sorted event sequence.
	Session Session `json:"session"`

	// Span is the session's time extent. Only meaningful for StatusOK.
	Span Span `json:"span"`

	// KeyEvents interleaves gap and activity findings in scan order.
	KeyEvents []KeyEvent `json:"key_events"`

	// Gaps lists detected pauses in chronological order.
	Gaps []GapEvent `json:"gaps"`

	// Activity lists high-activity detections in chronological order.
	Activity []ActivityEvent `json:"activity"`

	// TopWords are the most frequent content words, count-descending.
	TopWords []string `json:"top_words"`

	// UniqueWords is the size of the session's frequency table.
	UniqueWords int `json:"unique_words"`

	// TotalWordsRead is the session-level word volume metric.
	TotalWordsRead int `json:"total_words_read"`

	// Narrative is the generated summary excerpt, or explanatory prose
	// when there is not enough data to summarize.
	Narrative string `json:"narrative"`

	// Summarizer names the method that produced Narrative.
	Summarizer string `json:"summarizer"`
}

// InsufficientData reports whether the run short-circuited before the
// full pipeline.
func (r *Result) InsufficientData() bool {
	return r.Status != StatusOK
}

// Message returns the explanatory prose for an insufficient-data result.
func (r *Result) Message() string {
	switch r.Status {
	case StatusNoEvents:
		return "No text detection events were recorded. Cannot generate summary."
	case StatusNoValidTimes:
		return "No valid time data found in the log. Cannot generate summary."
	default:
		return ""
	}
}

// Analyze runs the full pipeline over raw loaded events. A log with no
// events or no parsable timestamps yields an insufficient-data result
// rather than an error.
func (a *Analyzer) Analyze(events []eventlog.DetectionEvent) *Result {
	result := &Result{
		Status:     StatusOK,
		Summarizer: a.summarizer.Name(),
	}

	if len(events) == 0 {
		result.Status = StatusNoEvents
		return result
	}

	result.Session = Normalize(events)
	if len(result.Session.Events) == 0 {
		result.Status = StatusNoValidTimes
		return result
	}

	sorted := result.Session.Events

	span, _ := SessionSpan(sorted)
	result.Span = span

	result.Gaps = DetectGaps(sorted, a.gapThreshold)
	result.Activity = DetectHighActivity(sorted, a.activityThreshold)
	result.KeyEvents = KeyEvents(sorted, a.gapThreshold, a.activityThreshold)

	stats := NewWordStats(sorted)
	result.TopWords = stats.TopWords(a.topWords)
	result.UniqueWords = stats.UniqueWords()
	result.TotalWordsRead = stats.TotalRead

	result.Narrative = a.summarizer.Summarize(stats.Flat)

	return result
}
