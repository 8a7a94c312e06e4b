// Package keypad renders the digit keypad and the current query.
package keypad

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
)

// rows lays the keypad out phone-style.
var rows = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{"0"},
}

// Keypad displays the digit grid with the current query above it.
type Keypad struct {
	styles  *styles.Styles
	query   string
	maxLen  int
	pressed string
}

// New creates a keypad component.
func New(s *styles.Styles, maxLen int) *Keypad {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Keypad{
		styles: s,
		maxLen: maxLen,
	}
}

// SetQuery updates the displayed query.
func (k *Keypad) SetQuery(query string) {
	k.query = query
}

// Query returns the displayed query.
func (k *Keypad) Query() string {
	return k.query
}

// Press marks a key as just pressed so it renders highlighted for the
// next frame.
func (k *Keypad) Press(digit string) {
	k.pressed = digit
}

// View renders the query display and the keypad grid.
func (k *Keypad) View() string {
	var b strings.Builder

	b.WriteString(k.styles.QueryDisplay.Render(k.renderQuery()))
	b.WriteString("\n")

	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for _, d := range row {
			style := k.styles.Key
			if d == k.pressed {
				style = style.BorderForeground(k.styles.Theme().Primary)
			}
			keys = append(keys, style.Render(d))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, keys...))
		b.WriteString("\n")
	}

	return b.String()
}

// renderQuery pads the query to the digit cap so the display width is
// stable while typing.
func (k *Keypad) renderQuery() string {
	var b strings.Builder
	for i := 0; i < k.maxLen; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < len(k.query) {
			b.WriteByte(k.query[i])
		} else {
			b.WriteString("·")
		}
	}
	return b.String()
}
