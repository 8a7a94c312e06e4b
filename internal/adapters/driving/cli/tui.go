package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cantolabs/fourcorner-cli/internal/adapters/driving/tui"
	"github.com/cantolabs/fourcorner-cli/internal/core/services"
)

var tuiFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive keypad",
	Long: `Launch the interactive terminal keypad for fourcorner.

Type digits to narrow the code prefix; the result list refreshes on
every keystroke.

Controls:
  0-9       - Append a digit
  Backspace - Delete the last digit
  c         - Clear the query
  ↑/k, ↓/j  - Navigate results
  Enter     - Show record details
  Esc       - Back
  q         - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiFile, "file", "", "ingest this dataset file instead of the default source")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the tui requires an interactive terminal")
	}

	if lookupService == nil || ingestService == nil {
		return errors.New("services not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Lookup:  lookupService,
		Session: services.NewSession(lookupService),
		Ingest:  ingestService,
	}, tuiFile)
	if err != nil {
		return fmt.Errorf("creating tui: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
