// Package detail provides the single-record detail view for the TUI.
package detail

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/messages"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

// View shows one record at full width: the glyph large, then every
// populated field on its own labelled line.
type View struct {
	styles *styles.Styles
	record domain.Record

	width  int
	height int
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.String() == "b" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewLookup}
			}
		}
		return v, nil

	case messages.RecordSelected:
		v.record = msg.Record
		return v, nil
	}

	return v, nil
}

// SetRecord replaces the displayed record.
func (v *View) SetRecord(rec domain.Record) {
	v.record = rec
}

// Record returns the displayed record.
func (v *View) Record() domain.Record {
	return v.record
}

// View renders the detail view.
func (v *View) View() string {
	glyph := v.styles.Glyph.Render(v.record.Character)

	rows := []string{
		v.renderField("Code", v.record.Code),
		v.renderField("Pinyin", v.record.Pinyin),
	}
	if v.record.Cantonese != "" {
		rows = append(rows, v.renderField("Cantonese", v.record.Cantonese))
	}
	rows = append(rows, v.renderField("Definition", v.record.Definition))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	help := v.styles.Help.Render("esc back · q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		v.styles.Title.Render("fourcorner"),
		"",
		glyph,
		"",
		v.styles.Border.Render(body),
		"",
		help,
	)
}

// renderField renders one labelled field line.
func (v *View) renderField(label, value string) string {
	if value == "" {
		value = v.styles.Muted.Render("(none)")
	}
	return fmt.Sprintf("%s %s",
		v.styles.Key.Render(fmt.Sprintf("%-11s", label+":")),
		value,
	)
}
