package ingest

import (
	"strings"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

// ParseRow extracts a candidate record from one trimmed, non-blank line
// using the given column map and reports whether it was accepted.
// Acceptance requires character, code (all digits), definition and
// pinyin to be present; cantonese is read but never required. Rows
// failing any check are rejected without error: ingestion skips them
// and moves on.
func ParseRow(line, delimiter string, cm domain.ColumnMap) (domain.Record, bool) {
	cols := strings.Split(line, delimiter)

	rec := domain.Record{
		Character:  column(cols, cm.Character),
		Cantonese:  column(cols, cm.Cantonese),
		Definition: column(cols, cm.Definition),
		Pinyin:     column(cols, cm.Pinyin),
		Code:       column(cols, cm.Code),
	}

	if !rec.Valid() {
		return domain.Record{}, false
	}
	return rec, true
}

// column returns the trimmed value at index i, or "" when the row is
// too short to have one.
func column(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}
