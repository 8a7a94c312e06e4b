package tui

import (
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
)

// Ports bundles the driving-port implementations the TUI runs against.
type Ports struct {
	// Lookup answers prefix queries.
	Lookup driving.LookupService

	// Session is the digit-at-a-time query state for the keypad.
	Session driving.QuerySession

	// Ingest rebuilds the index from the dataset source.
	Ingest driving.IngestService
}

// Validate checks that all required ports are present.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
