package services

import (
	"sort"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

const (
	// MaxQueryDigits caps the interactive query length. Codes are at
	// most 5 digits, so longer queries can never match.
	MaxQueryDigits = 5

	// MaxResults bounds how many ordered results a lookup returns, to
	// keep rendering cheap on highly non-selective prefixes.
	MaxResults = 100
)

// LookupService answers prefix queries against the index published by
// an Ingestor. Results are ordered exact-match-first, then ascending by
// code, and truncated to MaxResults.
type LookupService struct {
	ingestor *Ingestor
	limit    int
}

// NewLookupService creates a lookup service reading from the ingestor's
// published snapshot.
func NewLookupService(ingestor *Ingestor) *LookupService {
	return &LookupService{
		ingestor: ingestor,
		limit:    MaxResults,
	}
}

// Ready reports whether an index has been published.
func (s *LookupService) Ready() bool {
	return s.ingestor.snapshot() != nil
}

// Lookup returns the ordered, truncated results for a code prefix.
func (s *LookupService) Lookup(prefix string) ([]domain.Record, error) {
	snap := s.ingestor.snapshot()
	if snap == nil {
		return nil, domain.ErrNoIndex
	}
	if prefix == "" {
		return []domain.Record{}, nil
	}

	results := snap.index.Search(prefix)
	orderResults(results, prefix)

	if len(results) > s.limit {
		results = results[:s.limit]
	}

	logger.Debug("Lookup %q: %d results", prefix, len(results))
	return results, nil
}

// orderResults sorts in place: records whose code equals the query
// exactly come first; ties order by ascending code; identical codes
// keep the traversal order the index produced (stable sort).
func orderResults(results []domain.Record, prefix string) {
	sort.SliceStable(results, func(i, j int) bool {
		iExact := results[i].Code == prefix
		jExact := results[j].Code == prefix
		if iExact != jExact {
			return iExact
		}
		return results[i].Code < results[j].Code
	})
}

// Ensure Session implements the interface.
var _ driving.QuerySession = (*Session)(nil)

// Session is the digit-at-a-time query state driven by the keypad.
// Each mutation re-runs the lookup; an empty query or a missing index
// yields empty results rather than an error.
type Session struct {
	lookup  driving.LookupService
	query   []rune
	results []domain.Record
}

// NewSession creates an empty query session over a lookup service.
func NewSession(lookup driving.LookupService) *Session {
	return &Session{lookup: lookup}
}

// SubmitDigit appends one digit to the query. Non-digits and input past
// the cap are ignored.
func (s *Session) SubmitDigit(d rune) []domain.Record {
	if d < '0' || d > '9' || len(s.query) >= MaxQueryDigits {
		return s.results
	}
	s.query = append(s.query, d)
	return s.refresh()
}

// DeleteLastDigit removes the last digit of the query.
func (s *Session) DeleteLastDigit() []domain.Record {
	if len(s.query) == 0 {
		return s.results
	}
	s.query = s.query[:len(s.query)-1]
	return s.refresh()
}

// ClearQuery empties the query.
func (s *Session) ClearQuery() []domain.Record {
	s.query = s.query[:0]
	return s.refresh()
}

// Query returns the current query string.
func (s *Session) Query() string {
	return string(s.query)
}

// Results returns the results of the last mutation.
func (s *Session) Results() []domain.Record {
	return s.results
}

func (s *Session) refresh() []domain.Record {
	if len(s.query) == 0 {
		s.results = nil
		return s.results
	}
	results, err := s.lookup.Lookup(string(s.query))
	if err != nil {
		s.results = nil
		return s.results
	}
	s.results = results
	return s.results
}
