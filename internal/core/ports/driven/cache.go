package driven

import "context"

// DatasetCache stores the raw dataset text keyed by its source name so
// a later run can ingest without network access. Only the raw upstream
// text is cached, never the built index: every run still re-ingests
// from scratch.
type DatasetCache interface {
	// Put stores the raw text for a source, replacing any previous copy.
	Put(ctx context.Context, source, raw string) error

	// Get returns the cached raw text for a source.
	// Returns domain.ErrNotFound if nothing is cached.
	Get(ctx context.Context, source string) (string, error)

	// Close releases the underlying storage.
	Close() error
}
