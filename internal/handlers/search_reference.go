package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/logging"
	"github.com/siamtrade/thai-customs-mcp/internal/search"
	"github.com/siamtrade/thai-customs-mcp/internal/security"
)

const maxSearchResults = 20

// SearchReferenceHandler serves full-text search over the bundled customs
// reference documentation.
type SearchReferenceHandler struct {
	searcher search.Search
}

var _ ToolHandler = &SearchReferenceHandler{}

// NewSearchReferenceHandler creates the search_customs_reference tool
// handler over the given search backend.
func NewSearchReferenceHandler(searcher search.Search) *SearchReferenceHandler {
	return &SearchReferenceHandler{searcher: searcher}
}

// Handle runs the reference search and returns ranked chunks.
func (h SearchReferenceHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startTime := time.Now()
	args := request.GetArguments()

	queryValue, exists := args["query"]
	if !exists {
		return mcp.NewToolResultError("Missing required parameter 'query'. Search the customs reference for HS headings ('brake parts'), declaration fields ('customs value'), or procedures ('weight allocation')."), nil
	}

	query, ok := queryValue.(string)
	if !ok {
		return mcp.NewToolResultError("Parameter 'query' must be a string containing your search terms. Received: " + fmt.Sprintf("%T", queryValue)), nil
	}

	if err := security.ValidateQuery(query); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid query: %v", err)), nil
	}

	options := search.DefaultOptions()
	if maxResultsValue, exists := args["max_results"]; exists {
		maxResults, ok := maxResultsValue.(float64)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Parameter 'max_results' must be a number between 1 and %d. Received: %T", maxSearchResults, maxResultsValue)), nil
		}

		maxResultsInt := int(maxResults)
		// Enforce reasonable limits
		if maxResultsInt <= 0 {
			maxResultsInt = search.DefaultOptions().MaxResults
		} else if maxResultsInt > maxSearchResults {
			maxResultsInt = maxSearchResults
		}
		options.MaxResults = maxResultsInt
	}

	results, err := h.searcher.Search(ctx, query, options)
	if err != nil {
		logging.SearchEvent(ctx, query, 0, time.Since(startTime), err)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	logging.SearchEvent(ctx, query, len(results), time.Since(startTime), nil)

	response := struct {
		Query       string          `json:"query"`
		Results     []search.Result `json:"results"`
		ResultCount int             `json:"result_count"`
	}{
		Query:       query,
		Results:     results,
		ResultCount: len(results),
	}

	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize search results"), err
	}

	return mcp.NewToolResultText(string(resultJSON)), nil
}
