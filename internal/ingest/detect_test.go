package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

func TestDetectCodeColumn_FindsNumericColumn(t *testing.T) {
	lines := []string{
		"字|abc|def|x|x|x|x|x|x|9999",
	}

	col, err := DetectCodeColumn(lines, "|")

	require.NoError(t, err)
	assert.Equal(t, 9, col)
}

func TestDetectCodeColumn_FiveDigitCode(t *testing.T) {
	lines := []string{
		"本|bun2|root; origin|x|x|x|x|x|x|ben3|10230",
	}

	col, err := DetectCodeColumn(lines, "|")

	require.NoError(t, err)
	assert.Equal(t, 10, col)
}

func TestDetectCodeColumn_FirstHitWins(t *testing.T) {
	lines := []string{
		"a|b|c|d",             // too short, skipped
		"字|abc|def|x|x|1022",  // first usable row
		"字|9999|def|x|x|x|x",  // later rows ignored
	}

	col, err := DetectCodeColumn(lines, "|")

	require.NoError(t, err)
	assert.Equal(t, 5, col)
}

func TestDetectCodeColumn_SkipsShortRows(t *testing.T) {
	lines := []string{
		"1022|x",
		"9999|y|z",
		"字|abc|def|x|x|x|4321",
	}

	col, err := DetectCodeColumn(lines, "|")

	require.NoError(t, err)
	assert.Equal(t, 6, col)
}

func TestDetectCodeColumn_RejectsWrongLengthNumbers(t *testing.T) {
	// 3 and 6 digit values must not match the detection pattern.
	lines := []string{
		"字|123|def|x|x|x|123456|x",
	}

	_, err := DetectCodeColumn(lines, "|")

	assert.ErrorIs(t, err, domain.ErrNoCodeColumn)
}

func TestDetectCodeColumn_RejectsMixedContent(t *testing.T) {
	lines := []string{
		"字|1022a|def|x|x| 1022|x",
	}

	_, err := DetectCodeColumn(lines, "|")

	assert.ErrorIs(t, err, domain.ErrNoCodeColumn)
}

func TestDetectCodeColumn_NoMatchFails(t *testing.T) {
	lines := []string{
		"字|abc|def|ghi|jkl",
		"word|another|more|text|here",
	}

	_, err := DetectCodeColumn(lines, "|")

	assert.ErrorIs(t, err, domain.ErrNoCodeColumn)
}

func TestDetectCodeColumn_EmptyInputFails(t *testing.T) {
	_, err := DetectCodeColumn(nil, "|")

	assert.ErrorIs(t, err, domain.ErrNoCodeColumn)
}

func TestDetectCodeColumn_OnlySamplesFirstFiftyLines(t *testing.T) {
	lines := make([]string, 0, 60)
	for i := 0; i < 55; i++ {
		lines = append(lines, "字|abc|def|ghi|jkl")
	}
	// A perfectly good row past the sample window must not rescue
	// detection.
	lines = append(lines, "字|abc|def|x|x|x|x|x|x|9999")

	_, err := DetectCodeColumn(lines, "|")

	assert.ErrorIs(t, err, domain.ErrNoCodeColumn)
}
