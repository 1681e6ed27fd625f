// Package output provides report assembly and formatting for analysis results.
package output

import (
	"time"

	"github.com/anirudhjbabu1/ocrsummary/pkg/analyzer"
)

// Report is the complete narrative report: a pure, write-once composition
// of the analysis output with run metadata.
type Report struct {
	// Analysis is the pipeline output the report presents.
	Analysis *analyzer.Result `json:"analysis"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// LogFile is the path of the analyzed event log.
	LogFile string `json:"log_file"`

	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`

	// RecordsLoaded is the number of records read from the log.
	RecordsLoaded int `json:"records_loaded"`

	// RecordsDropped is the number of records skipped for bad timestamps.
	RecordsDropped int `json:"records_dropped"`
}

// NewReport assembles a Report from analysis results.
func NewReport(result *analyzer.Result, logFile string) *Report {
	return &Report{
		Analysis: result,
		Metadata: Metadata{
			LogFile:        logFile,
			GeneratedAt:    time.Now(),
			RecordsLoaded:  len(result.Session.Events) + len(result.Session.Dropped),
			RecordsDropped: len(result.Session.Dropped),
		},
	}
}

// HasKeyEvents returns true if any gap or high-activity finding was detected.
func (r *Report) HasKeyEvents() bool {
	return len(r.Analysis.KeyEvents) > 0
}
