package domain

// ColumnMap names the dataset columns a row parser reads. The dataset
// has no header row; glyph, cantonese, definition and pinyin sit at
// fixed positions by convention, while the code column is located per
// run by the column detector. Making the mapping an explicit value
// keeps that coupling visible and lets tests supply their own layouts.
type ColumnMap struct {
	// Character is the glyph column.
	Character int

	// Cantonese is the Cantonese romanization column.
	Cantonese int

	// Definition is the English gloss column.
	Definition int

	// Pinyin is the Mandarin romanization column.
	Pinyin int

	// Code is the detected classification-code column.
	Code int
}

// DefaultColumnMap returns the conventional layout of the reference
// dataset with the given detected code column.
func DefaultColumnMap(codeColumn int) ColumnMap {
	return ColumnMap{
		Character:  0,
		Cantonese:  1,
		Definition: 2,
		Pinyin:     9,
		Code:       codeColumn,
	}
}
