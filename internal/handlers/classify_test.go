package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamtrade/thai-customs-mcp/internal/classify"
)

func TestClassifyHandler(t *testing.T) {
	handler := NewClassifyHandler()

	t.Run("classifies a known description", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"description": "front brake pads",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var response classify.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.True(t, response.Matched)
		require.NotEmpty(t, response.Candidates)
		assert.Equal(t, "P001", response.Candidates[0].PartID)
		assert.Equal(t, "8708.30.50", response.Candidates[0].HSCode)
	})

	t.Run("honors max_results", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"description": "filter",
			"max_results": 1.0,
		}))
		require.NoError(t, err)

		var response classify.Result
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &response))

		assert.LessOrEqual(t, len(response.Candidates), 1)
	})

	t.Run("rejects a missing description", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(nil))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})

	t.Run("rejects a non-string description", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"description": 12,
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"description": "   ",
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})
}
