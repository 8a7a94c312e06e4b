// Package source provides dataset source adapters: the default
// network-fetched dataset and manually supplied local files.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// Ensure HTTPSource implements the interface.
var _ driven.DatasetSource = (*HTTPSource)(nil)

// defaultFetchTimeout bounds a dataset download.
const defaultFetchTimeout = 30 * time.Second

// HTTPSource fetches the dataset from a URL. Any transport failure or
// non-success status maps to domain.ErrSourceUnavailable so callers can
// fall back to cached or manual input.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for the given URL. client may be nil,
// in which case a client with a sane timeout is used.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTTPSource{
		url:    url,
		client: client,
	}
}

// Fetch downloads the complete dataset text.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", s.url, err)
	}

	logger.Debug("Fetching dataset from %s", s.url)
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %v: %w", s.url, err, domain.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %s: %w", s.url, resp.Status, domain.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", s.url, domain.ErrSourceUnavailable)
	}

	logger.Debug("Fetched %d bytes", len(body))
	return string(body), nil
}

// Name returns the source URL.
func (s *HTTPSource) Name() string {
	return s.url
}
