// ocrsummary - OCR Session Narrative Analyzer
//
// ocrsummary is a batch analyzer for OCR detection-event logs. It turns
// the JSON event log produced by the capture process into a narrative
// report: what was read, when, and whether anything unusual happened.
package main

import (
	"os"

	"github.com/anirudhjbabu1/ocrsummary/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
