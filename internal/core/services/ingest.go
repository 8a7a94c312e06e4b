package services

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driving"
	"github.com/cantolabs/fourcorner-cli/internal/index"
	"github.com/cantolabs/fourcorner-cli/internal/ingest"
	"github.com/cantolabs/fourcorner-cli/internal/logger"
)

// Ensure Ingestor implements the interface.
var _ driving.IngestService = (*Ingestor)(nil)

// snapshotState is one published ingestion: a frozen index plus its
// metadata. Readers get the whole struct through an atomic pointer, so
// they never observe a partially built index.
type snapshotState struct {
	index *index.Trie
	info  driving.IngestInfo
	gen   uint64
}

// Ingestor implements driving.IngestService. Each run builds a brand
// new index off to the side and publishes it atomically; the newest
// started run wins, so a stale in-flight fetch cannot clobber a manual
// upload that superseded it.
type Ingestor struct {
	source    driven.DatasetSource
	cache     driven.DatasetCache
	delimiter string

	gen  atomic.Uint64
	mu   sync.Mutex // serialises publication
	snap atomic.Pointer[snapshotState]
}

// NewIngestor creates an ingestor. source is the default dataset source
// and may be nil (manual input only); cache may be nil to disable the
// offline fallback.
func NewIngestor(source driven.DatasetSource, cache driven.DatasetCache, delimiter string) *Ingestor {
	return &Ingestor{
		source:    source,
		cache:     cache,
		delimiter: delimiter,
	}
}

// Ingest fetches the dataset from the default source and rebuilds the
// index. A failed fetch falls back to the cached copy when one exists;
// otherwise the error tells the caller to supply the dataset manually.
func (ing *Ingestor) Ingest(ctx context.Context) (driving.IngestInfo, error) {
	if ing.source == nil {
		return driving.IngestInfo{}, fmt.Errorf("no default source configured: %w", domain.ErrSourceUnavailable)
	}

	name := ing.source.Name()
	raw, err := ing.source.Fetch(ctx)
	if err != nil {
		logger.Warn("Fetch from %s failed: %v", name, err)
		if cached, cerr := ing.cachedText(ctx, name); cerr == nil {
			logger.Info("Using cached dataset for %s", name)
			return ing.run(cached, name+" (cached)")
		}
		return driving.IngestInfo{}, fmt.Errorf("fetch %s: %w", name, err)
	}

	info, err := ing.run(raw, name)
	if err != nil {
		return driving.IngestInfo{}, err
	}

	if ing.cache != nil {
		if cerr := ing.cache.Put(ctx, name, raw); cerr != nil {
			// Cache trouble never fails a successful ingestion.
			logger.Warn("Caching dataset for %s failed: %v", name, cerr)
		}
	}
	return info, nil
}

// IngestFile ingests a manually supplied dataset file.
func (ing *Ingestor) IngestFile(_ context.Context, path string) (driving.IngestInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return driving.IngestInfo{}, fmt.Errorf("read dataset file: %w", err)
	}
	return ing.run(string(raw), "file:"+path)
}

// IngestText ingests raw dataset text directly.
func (ing *Ingestor) IngestText(_ context.Context, raw string) (driving.IngestInfo, error) {
	return ing.run(raw, "manual")
}

// Info returns the currently published run, if any.
func (ing *Ingestor) Info() (driving.IngestInfo, bool) {
	snap := ing.snapshot()
	if snap == nil {
		return driving.IngestInfo{}, false
	}
	return snap.info, true
}

// Watch re-ingests the given dataset file whenever it changes, until
// ctx is cancelled. Bursts of write events (editors save in several
// steps) are coalesced through a rate limiter; last write wins.
func (ing *Ingestor) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}

	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if !limiter.Allow() {
					continue
				}
				logger.Debug("Dataset file changed: %s", event.Name)
				if _, err := ing.IngestFile(ctx, path); err != nil {
					logger.Warn("Re-ingest of %s failed: %v", path, err)
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", werr)
			}
		}
	}()

	return nil
}

// run executes one pipeline pass and publishes the result.
func (ing *Ingestor) run(raw, source string) (driving.IngestInfo, error) {
	gen := ing.gen.Add(1)

	result, err := ingest.NewPipeline(ing.delimiter).Run(raw)
	if err != nil {
		return driving.IngestInfo{}, err
	}

	info := driving.IngestInfo{
		Accepted:   result.Accepted,
		RunID:      result.RunID,
		Source:     source,
		IngestedAt: time.Now(),
	}

	ing.mu.Lock()
	defer ing.mu.Unlock()
	if cur := ing.snap.Load(); cur != nil && cur.gen > gen {
		// A run that started after this one already published; keep it.
		logger.Debug("Discarding superseded run %s", result.RunID)
		return cur.info, nil
	}
	ing.snap.Store(&snapshotState{
		index: result.Index,
		info:  info,
		gen:   gen,
	})
	return info, nil
}

// snapshot returns the current published snapshot, or nil before the
// first successful ingestion.
func (ing *Ingestor) snapshot() *snapshotState {
	return ing.snap.Load()
}

// cachedText fetches the cached dataset for a source name.
func (ing *Ingestor) cachedText(ctx context.Context, name string) (string, error) {
	if ing.cache == nil {
		return "", domain.ErrNotFound
	}
	return ing.cache.Get(ctx, name)
}
