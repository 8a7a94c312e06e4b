package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoCodeColumn indicates the column detector found no 4-5 digit
	// numeric column anywhere in its sample. Fatal for that ingestion
	// attempt; the consumer should ask for a manually supplied dataset.
	ErrNoCodeColumn = errors.New("no classification code column found")

	// ErrSourceUnavailable indicates the dataset could not be fetched
	// from its default source.
	ErrSourceUnavailable = errors.New("dataset source unavailable")

	// ErrNoIndex indicates no ingestion has published an index yet.
	ErrNoIndex = errors.New("no index available")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
