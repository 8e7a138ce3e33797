package handlers

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftPromptHandler(t *testing.T) {
	handler := NewDraftPromptHandler()

	t.Run("interpolates the shipment request", func(t *testing.T) {
		request := mcp.GetPromptRequest{}
		request.Params.Arguments = map[string]string{
			"request": "20 sets of brake pads from Osaka, CIF Laem Chabang",
		}

		result, err := handler.Handle(context.Background(), request)
		require.NoError(t, err)
		require.Len(t, result.Messages, 1)

		content, ok := result.Messages[0].Content.(mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, content.Text, "20 sets of brake pads from Osaka")
		assert.Contains(t, content.Text, "classify_auto_part")
		assert.Contains(t, content.Text, "draft_thai_declaration")
	})

	t.Run("falls back to a placeholder without arguments", func(t *testing.T) {
		request := mcp.GetPromptRequest{}

		result, err := handler.Handle(context.Background(), request)
		require.NoError(t, err)
		require.Len(t, result.Messages, 1)

		content, ok := result.Messages[0].Content.(mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, content.Text, "no shipment details provided yet")
	})
}
