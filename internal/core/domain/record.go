package domain

import "regexp"

// codePattern accepts any all-digit code. Row acceptance is deliberately
// looser than column detection (which requires 4-5 digits): detection
// narrows to a plausible column, acceptance then takes every all-digit
// value found in it.
var codePattern = regexp.MustCompile(`^\d+$`)

// Record is a single character entry in the dataset.
// Records are only ever constructed by the ingest parser; a Record that
// reaches the index has passed Valid.
type Record struct {
	// Character is the display glyph.
	Character string `json:"character"`

	// Code is the four-corner classification code (ASCII digits).
	Code string `json:"code"`

	// Definition is the English gloss.
	Definition string `json:"definition"`

	// Pinyin is the Mandarin romanization.
	Pinyin string `json:"pinyin"`

	// Cantonese is the Cantonese romanization. Optional: rows without
	// it are still accepted.
	Cantonese string `json:"cantonese,omitempty"`
}

// Valid reports whether the record meets the acceptance criteria:
// character, code, definition and pinyin present, code all digits.
// Cantonese is never required.
func (r *Record) Valid() bool {
	if r.Character == "" || r.Definition == "" || r.Pinyin == "" {
		return false
	}
	return codePattern.MatchString(r.Code)
}
