// Package list provides the navigable result list for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

// ResultList displays lookup results in a navigable list.
type ResultList struct {
	results  []domain.Record
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))), "")

	// One line per record; keep the selection in the visible window.
	visible := r.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRecord formats one result line: glyph, code, pinyin, gloss.
func (r *ResultList) renderRecord(index int, rec *domain.Record) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	def := rec.Definition
	maxDef := r.width - 24
	if maxDef < 10 {
		maxDef = 10
	}
	if len(def) > maxDef {
		def = def[:maxDef-3] + "..."
	}

	line := fmt.Sprintf("%s%s  %-6s %-8s %s", indicator, rec.Character, rec.Code, rec.Pinyin, def)
	if index == r.selected {
		return r.styles.Selected.Render(line)
	}
	return r.styles.Normal.Render(line)
}

// SetResults replaces the list contents and resets the selection.
func (r *ResultList) SetResults(results []domain.Record) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.Record {
	return r.results
}

// Selected returns the currently selected record, if any.
func (r *ResultList) Selected() (domain.Record, bool) {
	if r.selected < 0 || r.selected >= len(r.results) {
		return domain.Record{}, false
	}
	return r.results[r.selected], true
}

// SelectedIndex returns the index of the selected record.
func (r *ResultList) SelectedIndex() int {
	return r.selected
}

// MoveUp moves the selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component size.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}
