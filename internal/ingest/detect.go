// Package ingest parses the raw delimited character dataset into
// validated records and builds a fresh prefix index. Ingestion is a
// one-shot cold rebuild: each run consumes the whole input, locates the
// classification-code column heuristically, validates every row, and
// either publishes a new index or fails as a unit.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

const (
	// detectSampleSize is how many leading lines the detector examines.
	detectSampleSize = 50

	// detectMinColumns is the minimum column count for a sample line to
	// be considered a real data row. Shorter lines are skipped during
	// detection only; the row parser judges them on its own terms.
	detectMinColumns = 5
)

// detectCodePattern is the detection-time column test: exactly 4 or 5
// ASCII digits and nothing else. Stricter than row acceptance on
// purpose; see domain.Record.
var detectCodePattern = regexp.MustCompile(`^\d{4,5}$`)

// DetectCodeColumn infers which column of the dataset holds the
// classification code. It examines at most the first 50 lines, skips
// lines with fewer than 5 columns, and returns the first column whose
// value is exactly 4 or 5 digits. The first hit fixes the column for
// the entire run.
func DetectCodeColumn(lines []string, delimiter string) (int, error) {
	sample := len(lines)
	if sample > detectSampleSize {
		sample = detectSampleSize
	}

	for i := 0; i < sample; i++ {
		cols := strings.Split(lines[i], delimiter)
		if len(cols) < detectMinColumns {
			continue
		}
		for col, val := range cols {
			if detectCodePattern.MatchString(val) {
				logger.Debug("Code column detected: line %d, column %d (%q)", i, col, val)
				return col, nil
			}
		}
	}

	return 0, fmt.Errorf("sampled %d lines: %w", sample, domain.ErrNoCodeColumn)
}
