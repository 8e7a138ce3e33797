package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/classify"
	"github.com/siamtrade/thai-customs-mcp/internal/logging"
	"github.com/siamtrade/thai-customs-mcp/internal/security"
)

// ClassifyHandler suggests HS codes for free-text part descriptions.
type ClassifyHandler struct{}

var _ ToolHandler = &ClassifyHandler{}

// NewClassifyHandler creates the classify_auto_part tool handler.
func NewClassifyHandler() *ClassifyHandler {
	return &ClassifyHandler{}
}

// Handle classifies the given part description against the demo catalog
// and the HS reference table.
func (h ClassifyHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	startTime := time.Now()
	args := request.GetArguments()

	descriptionValue, exists := args["description"]
	if !exists {
		return mcp.NewToolResultError("Missing required parameter 'description'. Provide the part description to classify. Example: {\"description\": \"front brake pads\"}"), nil
	}

	description, ok := descriptionValue.(string)
	if !ok {
		return mcp.NewToolResultError("Parameter 'description' must be a string containing the part description. Received: " + fmt.Sprintf("%T", descriptionValue)), nil
	}

	if err := security.ValidateQuery(description); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid description: %v", err)), nil
	}

	maxResults := classify.DefaultMaxResults
	if maxResultsValue, exists := args["max_results"]; exists {
		maxResultsFloat, ok := maxResultsValue.(float64)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Parameter 'max_results' must be a number between 1 and %d. Received: %T", classify.MaxResultsLimit, maxResultsValue)), nil
		}
		maxResults = int(maxResultsFloat)
	}

	result := classify.Classify(description, maxResults)
	logging.ClassificationEvent(ctx, len(result.Candidates), result.Matched, time.Since(startTime))

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize classification result"), err
	}

	return mcp.NewToolResultText(string(resultJSON)), nil
}
