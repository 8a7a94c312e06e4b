// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
)

// IngestCompleted carries the outcome of an ingestion run back to the
// model. Err is set when the run failed and the user should supply the
// dataset manually.
type IngestCompleted struct {
	Info driving.IngestInfo
	Err  error
}

// QueryChanged is sent when the keypad query changes.
type QueryChanged struct {
	Query string
}

// RecordSelected is sent when a result is chosen for the detail view.
type RecordSelected struct {
	Record domain.Record
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLookup is the keypad and results view.
	ViewLookup ViewType = iota
	// ViewDetail shows a single record.
	ViewDetail
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLookup:
		return "lookup"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}
