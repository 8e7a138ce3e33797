package search

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *FullTextSearch {
	t.Helper()

	docs := fstest.MapFS{
		"docs/hs_classification.md": &fstest.MapFile{Data: []byte(`# HS classification notes

## Brakes

Brake pads and brake parts are classified under heading 8708.30.

## Filters

Air filters fall under 8421.31 and oil filters under 8421.23.
`)},
		"docs/ignored.txt": &fstest.MapFile{Data: []byte("not markdown")},
	}

	db, err := InitSQLiteDB(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, BuildIndex(db, docs))

	return NewFullTextSearcher(db)
}

func TestOpenExistingIndex(t *testing.T) {
	docs := fstest.MapFS{
		"weights.md": &fstest.MapFile{Data: []byte("# Weight allocation\n\nAllocated proportionally to value.\n")},
	}

	path := filepath.Join(t.TempDir(), "index.db")

	db, err := InitSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, BuildIndex(db, docs))
	require.NoError(t, db.Close())

	// Reopen without recreating the table, as the server does for a
	// prebuilt index.
	reopened, err := OpenSQLiteDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	results, err := NewFullTextSearcher(reopened).Search(context.Background(), "allocation", DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestFullTextSearch(t *testing.T) {
	searcher := newTestIndex(t)
	ctx := context.Background()

	t.Run("finds reference chunks", func(t *testing.T) {
		results, err := searcher.Search(ctx, "brake pads", DefaultOptions())
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Contains(t, results[0].Content, "8708.30")
		assert.Equal(t, "customs_reference", results[0].Source)
	})

	t.Run("finds catalog parts", func(t *testing.T) {
		results, err := searcher.Search(ctx, "radiator", DefaultOptions())
		require.NoError(t, err)
		require.NotEmpty(t, results)

		var paths []string
		for _, r := range results {
			paths = append(paths, r.Path)
		}
		assert.Contains(t, paths, "catalog/P009")
	})

	t.Run("finds hs headings", func(t *testing.T) {
		results, err := searcher.Search(ctx, "spark plugs", DefaultOptions())
		require.NoError(t, err)
		require.NotEmpty(t, results)
	})

	t.Run("respects max results", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxResults = 1

		results, err := searcher.Search(ctx, "filters", opts)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		results, err := searcher.Search(ctx, "gearbox", DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
