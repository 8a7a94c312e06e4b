package driving

import (
	"context"
	"time"
)

// IngestInfo describes one published ingestion run.
type IngestInfo struct {
	// Accepted is the number of rows that passed validation.
	Accepted int

	// RunID identifies the ingestion run.
	RunID string

	// Source names where the raw text came from.
	Source string

	// IngestedAt is when the run was published.
	IngestedAt time.Time
}

// IngestService rebuilds the index from a dataset source. Every call is
// a cold rebuild producing a wholly new index; the newest completed run
// replaces the previous one atomically (last write wins).
type IngestService interface {
	// Ingest fetches the dataset from the configured default source,
	// falling back to the local cache when the fetch fails, and
	// publishes a new index. On failure the caller should offer
	// manual input instead.
	Ingest(ctx context.Context) (IngestInfo, error)

	// IngestFile ingests a manually supplied dataset file.
	IngestFile(ctx context.Context, path string) (IngestInfo, error)

	// IngestText ingests raw dataset text directly.
	IngestText(ctx context.Context, raw string) (IngestInfo, error)

	// Info returns the currently published run, if any.
	Info() (IngestInfo, bool)
}
