// Package tui implements the interactive terminal interface. It follows
// the Elm architecture: a single App model routes messages to the active
// view, and every state change happens inside Update.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/keymap"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/messages"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/styles"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/views/detail"
	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui/views/lookup"
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
)

// ingestTimeout bounds the startup ingestion kicked off by Init.
const ingestTimeout = 30 * time.Second

// Ensure App implements the bubbletea model interface.
var _ tea.Model = (*App)(nil)

// App is the root bubbletea model.
type App struct {
	ports  *Ports
	styles *styles.Styles
	keymap *keymap.KeyMap

	lookupView *lookup.View
	detailView *detail.View
	activeView messages.ViewType

	file string

	width  int
	height int
}

// NewApp creates the root model. file, when non-empty, is a local
// dataset ingested instead of the configured remote source.
func NewApp(ports *Ports, file string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:      ports,
		styles:     s,
		keymap:     km,
		lookupView: lookup.NewView(s, km, ports.Session),
		detailView: detail.NewView(s),
		activeView: messages.ViewLookup,
		file:       file,
	}, nil
}

// Init starts the dataset ingestion in the background.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("fourcorner"),
		a.ingestCmd(),
	)
}

// ingestCmd runs the ingestion and reports its outcome as a message.
func (a *App) ingestCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()

		var info driving.IngestInfo
		var err error
		if a.file != "" {
			info, err = a.ports.Ingest.IngestFile(ctx, a.file)
		} else {
			info, err = a.ports.Ingest.Ingest(ctx)
		}
		if err != nil {
			if errors.Is(err, domain.ErrSourceUnavailable) || errors.Is(err, domain.ErrNoCodeColumn) {
				err = fmt.Errorf("%w (press q, then retry with --file <path>)", err)
			}
			return messages.IngestCompleted{Err: err}
		}

		return messages.IngestCompleted{Info: info}
	}
}

// Update routes messages to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.lookupView, cmd = a.lookupView.Update(msg)
		cmds = append(cmds, cmd)
		a.detailView, cmd = a.detailView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && a.activeView == messages.ViewLookup) {
			return a, tea.Quit
		}
		return a.updateActiveView(msg)

	case messages.IngestCompleted:
		var cmd tea.Cmd
		a.lookupView, cmd = a.lookupView.Update(msg)
		return a, cmd

	case messages.RecordSelected:
		a.detailView.SetRecord(msg.Record)
		a.activeView = messages.ViewDetail
		return a, nil

	case messages.ViewChanged:
		a.activeView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		return a.updateActiveView(msg)
	}

	return a, nil
}

// updateActiveView forwards a message to whichever view is showing.
func (a *App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	default:
		a.lookupView, cmd = a.lookupView.Update(msg)
	}
	return a, cmd
}

// View renders the active view.
func (a *App) View() string {
	switch a.activeView {
	case messages.ViewDetail:
		return a.detailView.View()
	default:
		return a.lookupView.View()
	}
}

// ActiveView returns which view is currently shown.
func (a *App) ActiveView() messages.ViewType {
	return a.activeView
}
