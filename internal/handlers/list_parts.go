package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/catalog"
)

// ListPartsHandler serves the demo auto-parts catalog.
type ListPartsHandler struct{}

var _ ToolHandler = &ListPartsHandler{}

// NewListPartsHandler creates the list_demo_parts tool handler.
func NewListPartsHandler() *ListPartsHandler {
	return &ListPartsHandler{}
}

// Handle returns the demo catalog, optionally filtered by a query substring.
func (h ListPartsHandler) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query := ""
	if queryValue, exists := args["query"]; exists {
		q, ok := queryValue.(string)
		if !ok {
			return mcp.NewToolResultError("Parameter 'query' must be a string. Received: " + fmt.Sprintf("%T", queryValue)), nil
		}
		query = q
	}

	parts := catalog.FilterParts(query)

	response := struct {
		Parts []catalog.Part `json:"parts"`
		Count int            `json:"count"`
	}{
		Parts: parts,
		Count: len(parts),
	}

	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize parts catalog"), err
	}

	return mcp.NewToolResultText(string(resultJSON)), nil
}
