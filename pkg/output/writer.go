package output

import (
	"context"
	"fmt"
	"os"
)

// WriteFile renders the report with the formatter and writes it to path,
// truncating any existing file. A write failure is fatal and reported with
// the underlying cause; there is no retry.
func WriteFile(ctx context.Context, f Formatter, report *Report, path string) error {
	file, err := os.Create(path) // #nosec G304 -- user-provided report path is expected
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := f.Format(ctx, report, file); err != nil {
		file.Close()
		return fmt.Errorf("writing report: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}

	return nil
}
