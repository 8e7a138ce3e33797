package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrade/thai-customs-mcp/internal/catalog"
)

func TestListPartsHandler(t *testing.T) {
	handler := NewListPartsHandler()

	t.Run("returns the full catalog without a query", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(nil))
		require.NoError(t, err)

		var response struct {
			Parts []catalog.Part `json:"parts"`
			Count int            `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.Equal(t, len(catalog.Parts()), response.Count)
		assert.Len(t, response.Parts, response.Count)
	})

	t.Run("filters by query substring", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query": "brake",
		}))
		require.NoError(t, err)

		var response struct {
			Parts []catalog.Part `json:"parts"`
			Count int            `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		require.Len(t, response.Parts, 1)
		assert.Equal(t, "P001", response.Parts[0].PartID)
		assert.Equal(t, 1, response.Count)
	})

	t.Run("rejects a non-string query", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"query": 42.0,
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})
}
