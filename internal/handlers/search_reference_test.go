package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrade/thai-customs-mcp/internal/search"
)

type stubSearch struct {
	results  []search.Result
	err      error
	lastOpts search.Options
}

func (s *stubSearch) Search(_ context.Context, _ string, opts search.Options) ([]search.Result, error) {
	s.lastOpts = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubSearch) Close() error { return nil }

func TestSearchReferenceHandler(t *testing.T) {
	t.Run("returns ranked results", func(t *testing.T) {
		stub := &stubSearch{results: []search.Result{
			{Title: "Heading 8708.30", Content: "Brakes and servo-brakes", Path: "hs/8708.30", Score: 2.5, Source: "customs_reference"},
		}}
		handler := NewSearchReferenceHandler(stub)

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query": "brake parts",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response struct {
			Query       string          `json:"query"`
			Results     []search.Result `json:"results"`
			ResultCount int             `json:"result_count"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.Equal(t, "brake parts", response.Query)
		assert.Equal(t, 1, response.ResultCount)
		require.Len(t, response.Results, 1)
		assert.Equal(t, "Heading 8708.30", response.Results[0].Title)
	})

	t.Run("caps max_results", func(t *testing.T) {
		stub := &stubSearch{}
		handler := NewSearchReferenceHandler(stub)

		_, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query":       "vat",
			"max_results": 100.0,
		}))
		require.NoError(t, err)

		assert.Equal(t, maxSearchResults, stub.lastOpts.MaxResults)
	})

	t.Run("falls back to the default for non-positive max_results", func(t *testing.T) {
		stub := &stubSearch{}
		handler := NewSearchReferenceHandler(stub)

		_, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query":       "vat",
			"max_results": -3.0,
		}))
		require.NoError(t, err)

		assert.Equal(t, search.DefaultOptions().MaxResults, stub.lastOpts.MaxResults)
	})

	t.Run("rejects a missing query", func(t *testing.T) {
		handler := NewSearchReferenceHandler(&stubSearch{})

		result, err := handler.Handle(context.Background(), callToolRequest(nil))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})

	t.Run("reports backend failures as tool errors", func(t *testing.T) {
		handler := NewSearchReferenceHandler(&stubSearch{err: errors.New("index unavailable")})

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query": "customs value",
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "index unavailable")
	})
}
