// Package sqlite provides a SQLite-backed dataset cache. Only the raw
// upstream text is stored; the prefix index itself is never persisted,
// so every run still re-ingests from scratch.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
	"github.com/cantolabs/fourcorner-cli/internal/core/ports/driven"
)

// Ensure Cache implements the interface.
var _ driven.DatasetCache = (*Cache)(nil)

// Cache stores fetched dataset text keyed by source name.
type Cache struct {
	db   *sql.DB
	path string
}

// NewCache creates a cache at the specified data directory.
// If dataDir is empty, defaults to ~/.fourcorner/data/cache.db.
func NewCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fourcorner", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// WAL mode for better concurrency between CLI invocations.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Cache{
		db:   db,
		path: dbPath,
	}

	if err := c.bootstrap(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising schema: %w", err)
	}

	return c, nil
}

// bootstrap creates the schema if it does not exist.
func (c *Cache) bootstrap() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS datasets (
			source      TEXT PRIMARY KEY,
			raw         TEXT NOT NULL,
			fetched_at  TEXT NOT NULL
		)
	`)
	return err
}

// Put stores the raw text for a source, replacing any previous copy.
func (c *Cache) Put(ctx context.Context, source, raw string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO datasets (source, raw, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			raw = excluded.raw,
			fetched_at = excluded.fetched_at
	`, source, raw, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("caching dataset for %s: %w", source, err)
	}
	return nil
}

// Get returns the cached raw text for a source.
func (c *Cache) Get(ctx context.Context, source string) (string, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT raw FROM datasets WHERE source = ?`, source,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading cached dataset for %s: %w", source, err)
	}
	return raw, nil
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}
