package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantolabs/fourcorner-cli/internal/core/domain"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := NewCache(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutAndGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "http://example.com/chars.txt", "raw|data"))

	raw, err := c.Get(ctx, "http://example.com/chars.txt")
	require.NoError(t, err)
	assert.Equal(t, "raw|data", raw)
}

func TestCache_GetMissing(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "http://example.com/other.txt")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCache_PutReplaces(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "src", "old"))
	require.NoError(t, c.Put(ctx, "src", "new"))

	raw, err := c.Get(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, "new", raw)
}

func TestCache_SourcesAreIndependent(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "a", "text-a"))
	require.NoError(t, c.Put(ctx, "b", "text-b"))

	raw, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "text-a", raw)
}

func TestCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	c, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, "src", "persisted"))
	require.NoError(t, c.Close())

	c2, err := NewCache(dir)
	require.NoError(t, err)
	defer c2.Close()

	raw, err := c2.Get(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, "persisted", raw)
}

func TestCache_PathInsideDataDir(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, filepath.Join(dir, "cache.db"), c.Path())
}
