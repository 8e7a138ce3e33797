// Package search provides customs reference documentation search backed by
// a SQLite FTS5 index, with an optional ChromaDB semantic backend.
package search

import (
	"context"
	"io"
)

// Result represents a search result from the customs reference documentation.
type Result struct {
	Title    string            `json:"title,omitempty"`
	Content  string            `json:"content"`
	Path     string            `json:"path,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Score    float32           `json:"score,omitempty"`
	Source   string            `json:"source,omitempty"`
}

// Options configures search behavior.
type Options struct {
	MaxResults     int    `json:"max_results"`
	CollectionName string `json:"collection_name"`
}

// Search defines the interface for reference search implementations.
type Search interface {
	// Search returns reference chunks matching the query.
	Search(ctx context.Context, query string, opts Options) ([]Result, error)

	// Close implements io.Closer to release resources.
	io.Closer
}

const (
	defaultMaxResults     = 5
	defaultCollectionName = "customs_reference"
)

// DefaultOptions returns default search configuration.
func DefaultOptions() Options {
	return Options{
		MaxResults:     defaultMaxResults,
		CollectionName: defaultCollectionName,
	}
}

// BackendType represents the type of search backend to use.
type BackendType string

const (
	// BackendFullText represents the SQLite FTS5 backend.
	BackendFullText BackendType = "fulltext"
	// BackendChroma represents the ChromaDB backend.
	BackendChroma BackendType = "chroma"
)
