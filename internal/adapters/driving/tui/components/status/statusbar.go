// Package status provides the status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/keymap"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateResults State = "results"
	StateError   State = "error"
)

// Bar displays ingestion state, result counts and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or message side of the bar.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading dataset...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateResults:
		return s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	case StateReady:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
		return s.styles.Muted.Render("Ready")
	default:
		return ""
	}
}

// renderRight renders the keybinding hints.
func (s *Bar) renderRight() string {
	hints := make([]string, 0, 4)
	for _, b := range s.keymap.ShortHelp() {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, "  "))
}

// SetState updates the displayed state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the displayed state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown on the left.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// SetResultCount sets the count shown in the results state.
func (s *Bar) SetResultCount(n int) {
	s.resultCount = n
	s.state = StateResults
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
