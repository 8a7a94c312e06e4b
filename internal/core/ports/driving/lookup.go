package driving

import (
	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

// LookupService answers prefix queries against the currently published
// index. Queries are synchronous, side-effect-free and safe to call at
// any time; the only precondition is that an ingestion has published an
// index (domain.ErrNoIndex otherwise).
type LookupService interface {
	// Lookup returns every record whose code starts with prefix,
	// exact matches first, then ascending by code, truncated to the
	// service's result limit. An empty prefix returns no results.
	Lookup(prefix string) ([]domain.Record, error)

	// Ready reports whether an index has been published.
	Ready() bool
}

// QuerySession is the interactive digit-at-a-time query interface
// consumed by the keypad. Each mutation re-runs the lookup and returns
// the fresh result list.
type QuerySession interface {
	// SubmitDigit appends one digit to the query. Input past the digit
	// cap, and anything that is not an ASCII digit, is ignored.
	SubmitDigit(d rune) []domain.Record

	// DeleteLastDigit removes the last digit of the query.
	DeleteLastDigit() []domain.Record

	// ClearQuery empties the query.
	ClearQuery() []domain.Record

	// Query returns the current query string.
	Query() string

	// Results returns the results of the last mutation.
	Results() []domain.Record
}
