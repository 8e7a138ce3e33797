package search

import (
	"context"
	"fmt"
	"os"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	defaultef "github.com/amikos-tech/chroma-go/pkg/embeddings/default_ef"
)

const (
	// DefaultChromaURL is the default ChromaDB server URL.
	DefaultChromaURL = "http://localhost:8000"
)

// ChromaSearch implements the Search interface using ChromaDB. The client is
// initialized lazily on first use so the server can start without a running
// ChromaDB instance.
type ChromaSearch struct {
	chromaClient chroma.Client
	collection   chroma.Collection
	url          string
	collectionID string
}

var _ Search = &ChromaSearch{}

// NewChromaSearch creates a new ChromaDB search client. The server URL comes
// from the CHROMA_URL environment variable when url is empty.
func NewChromaSearch(url, collection string) *ChromaSearch {
	if url == "" {
		url = DefaultChromaURL
		if envURL := os.Getenv("CHROMA_URL"); envURL != "" {
			url = envURL
		}
	}
	if collection == "" {
		collection = defaultCollectionName
	}

	return &ChromaSearch{
		url:          url,
		collectionID: collection,
	}
}

// initializeChromaClient initializes the ChromaDB client and collection if not already done.
func (c *ChromaSearch) initializeChromaClient(ctx context.Context) error {
	if c.chromaClient != nil && c.collection != nil {
		return nil // Already initialized
	}

	var client chroma.Client
	var err error

	if c.url != DefaultChromaURL {
		client, err = chroma.NewHTTPClient(chroma.WithBaseURL(c.url))
	} else {
		client, err = chroma.NewHTTPClient()
	}
	if err != nil {
		return fmt.Errorf("failed to create ChromaDB client: %w", err)
	}

	c.chromaClient = client

	// Create default embedding function (all-MiniLM-L6-v2)
	ef, _, err := defaultef.NewDefaultEmbeddingFunction()
	if err != nil {
		return fmt.Errorf("failed to initialize default embedding function: %w", err)
	}

	collection, err := client.GetCollection(ctx, c.collectionID, chroma.WithEmbeddingFunctionGet(ef))
	if err != nil {
		return fmt.Errorf("failed to get collection '%s': %w", c.collectionID, err)
	}

	c.collection = collection
	return nil
}

// Search queries the customs reference collection for content similar to the query.
func (c *ChromaSearch) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	if err := c.initializeChromaClient(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize ChromaDB client: %w", err)
	}

	queryResult, err := c.collection.Query(ctx,
		chroma.WithQueryTexts(query),
		chroma.WithNResults(opts.MaxResults),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ChromaDB collection: %w", err)
	}

	results := make([]Result, 0)

	documentGroups := queryResult.GetDocumentsGroups()
	if len(documentGroups) == 0 {
		return results, nil
	}

	// Process the first group (since we only have one query)
	documents := documentGroups[0]
	metadatas := queryResult.GetMetadatasGroups()
	distances := queryResult.GetDistancesGroups()

	for i, document := range documents {
		result := Result{
			Content: fmt.Sprintf("%v", document),
			Source:  c.collectionID,
		}

		if len(metadatas) > 0 && i < len(metadatas[0]) && metadatas[0][i] != nil {
			result.Metadata = map[string]string{
				"metadata": fmt.Sprintf("%v", metadatas[0][i]),
			}
		}

		// ChromaDB returns distances, lower is better.
		if len(distances) > 0 && i < len(distances[0]) {
			result.Score = 1.0 - float32(distances[0][i])
		}

		results = append(results, result)
	}

	return results, nil
}

// Close closes the ChromaDB client to release resources.
func (c *ChromaSearch) Close() error {
	if c.chromaClient != nil {
		if err := c.chromaClient.Close(); err != nil {
			return fmt.Errorf("failed to close ChromaDB client: %w", err)
		}
	}
	return nil
}
