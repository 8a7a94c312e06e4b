package driven

import "context"

// DatasetSource fetches the raw delimited character dataset as UTF-8
// text. Sources are one-shot: each Fetch returns the whole dataset or
// an error, with no streaming or partial reads.
type DatasetSource interface {
	// Fetch returns the complete raw dataset text.
	Fetch(ctx context.Context) (string, error)

	// Name describes the source for logs and error messages,
	// e.g. "http://example.com/chars.txt" or "file:dataset.txt".
	Name() string
}
