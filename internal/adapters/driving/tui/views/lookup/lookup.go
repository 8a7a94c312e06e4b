// Package lookup provides the keypad-and-results view for the TUI.
package lookup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/components/keypad"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/components/list"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/components/status"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/keymap"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/messages"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
)

// maxQueryDigits mirrors the session's digit cap for display purposes.
const maxQueryDigits = 5

// View is the main lookup view: keypad, result list and status bar.
// Every digit keystroke re-queries the index through the session.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	keypad    *keypad.Keypad
	list      *list.ResultList
	statusbar *status.Bar

	session driving.QuerySession

	width  int
	height int
}

// NewView creates a new lookup view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.QuerySession) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		keypad:    keypad.New(s, maxQueryDigits),
		list:      list.NewResultList(s),
		statusbar: status.NewBar(s, km),
		session:   session,
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.IngestCompleted:
		v.handleIngestCompleted(msg)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		v.keypad.Press(key)
		v.refresh(v.session.SubmitDigit(rune(key[0])))
		return v, nil

	case msg.Type == tea.KeyBackspace:
		v.keypad.Press("")
		v.refresh(v.session.DeleteLastDigit())
		return v, nil

	case key == "c":
		v.keypad.Press("")
		v.refresh(v.session.ClearQuery())
		return v, nil

	case msg.Type == tea.KeyEnter:
		if rec, ok := v.list.Selected(); ok {
			return v, func() tea.Msg {
				return messages.RecordSelected{Record: rec}
			}
		}
		return v, nil
	}

	// Navigation keys go to the list.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handleIngestCompleted updates the status bar after an ingestion run.
func (v *View) handleIngestCompleted(msg messages.IngestCompleted) {
	if msg.Err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage(fmt.Sprintf("%d records from %s", msg.Info.Accepted, msg.Info.Source))
}

// refresh syncs keypad and list with the session after a mutation.
func (v *View) refresh(results []domain.Record) {
	v.keypad.SetQuery(v.session.Query())
	v.list.SetResults(results)
	if v.session.Query() == "" {
		v.statusbar.SetState(status.StateReady)
		return
	}
	v.statusbar.SetResultCount(len(results))
}

// View renders the lookup view.
func (v *View) View() string {
	header := v.styles.Title.Render("fourcorner")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.keypad.View(),
		"   ",
		v.list.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		body,
		"",
		v.statusbar.View(),
	)
}

// SetDimensions sets the view size and forwards it to components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
	v.list.SetDimensions(width-30, height-10)
}

// Query returns the current query string.
func (v *View) Query() string {
	return v.session.Query()
}

// Selected returns the currently highlighted record.
func (v *View) Selected() (domain.Record, bool) {
	return v.list.Selected()
}
