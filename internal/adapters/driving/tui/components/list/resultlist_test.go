package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

func sampleRecords() []domain.Record {
	return []domain.Record{
		{Character: "一", Code: "10000", Pinyin: "yī", Definition: "one"},
		{Character: "丁", Code: "10200", Pinyin: "dīng", Definition: "fourth"},
		{Character: "七", Code: "40710", Pinyin: "qī", Definition: "seven"},
	}
}

func TestNewResultList_Empty(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())

	assert.Empty(t, r.Results())
	_, ok := r.Selected()
	assert.False(t, ok)
}

func TestResultList_SetResults_ResetsSelection(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetResults(sampleRecords())
	r.MoveDown()
	require.Equal(t, 1, r.SelectedIndex())

	r.SetResults(sampleRecords()[:2])

	assert.Equal(t, 0, r.SelectedIndex())
}

func TestResultList_Navigation(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetResults(sampleRecords())

	r.MoveDown()
	r.MoveDown()
	assert.Equal(t, 2, r.SelectedIndex())

	// Clamped at the last record.
	r.MoveDown()
	assert.Equal(t, 2, r.SelectedIndex())

	r.MoveUp()
	assert.Equal(t, 1, r.SelectedIndex())

	r.MoveUp()
	r.MoveUp()
	assert.Equal(t, 0, r.SelectedIndex())
}

func TestResultList_Update_ArrowAndVimKeys(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetResults(sampleRecords())

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, r.SelectedIndex())

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, r.SelectedIndex())

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, r.SelectedIndex())

	r, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, r.SelectedIndex())
}

func TestResultList_Selected(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetResults(sampleRecords())
	r.MoveDown()

	rec, ok := r.Selected()

	require.True(t, ok)
	assert.Equal(t, "丁", rec.Character)
}

func TestResultList_View_Empty(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())

	assert.Contains(t, r.View(), "No results")
}

func TestResultList_View_ShowsRecordsAndCount(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetResults(sampleRecords())

	out := r.View()

	assert.Contains(t, out, "Results (3)")
	assert.Contains(t, out, "一")
	assert.Contains(t, out, "10000")
	assert.Contains(t, out, "> ")
}

func TestResultList_View_TruncatesLongDefinitions(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetDimensions(30, 10)
	long := "a definition far longer than the available column width"
	r.SetResults([]domain.Record{
		{Character: "書", Code: "50006", Pinyin: "shū", Definition: long},
	})

	out := r.View()

	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long)
}

func TestResultList_View_WindowFollowsSelection(t *testing.T) {
	r := NewResultList(styles.DefaultStyles())
	r.SetDimensions(80, 6)

	records := make([]domain.Record, 20)
	for i := range records {
		records[i] = domain.Record{Character: "字", Code: "10000", Pinyin: "zì", Definition: "char"}
	}
	r.SetResults(records)

	for i := 0; i < 19; i++ {
		r.MoveDown()
	}

	// Rendering with the selection at the bottom must not panic and
	// must still show the indicator.
	assert.Contains(t, r.View(), "> ")
}
