package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/extract"
	"github.com/siamtrade/thai-customs-mcp/internal/security"
)

// ExtractHandler extracts the text layer of shipping document PDFs so the
// contents can feed classification and declaration drafting.
type ExtractHandler struct {
	documentRoot string
}

var _ ToolHandler = &ExtractHandler{}

// NewExtractHandler creates the extract_document_text tool handler. Paths
// are resolved against documentRoot and must stay inside it.
func NewExtractHandler(documentRoot string) *ExtractHandler {
	return &ExtractHandler{documentRoot: documentRoot}
}

// Handle validates the requested path and extracts the document text.
func (h ExtractHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	pathValue, exists := args["path"]
	if !exists {
		return mcp.NewToolResultError("Missing required parameter 'path'. Provide the path of a PDF shipping document, relative to the configured document root."), nil
	}

	path, ok := pathValue.(string)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Parameter 'path' must be a string. Received: %T", pathValue)), nil
	}

	if h.documentRoot == "" {
		return mcp.NewToolResultError("Document extraction is disabled: no document root is configured. Set DOCUMENT_ROOT to the directory holding your shipping documents."), nil
	}

	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(h.documentRoot, resolved)
	}

	if err := security.ValidatePDFPath(resolved, h.documentRoot); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid document path: %v", err)), nil
	}

	extraction, err := extract.FromFile(ctx, resolved)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	resultJSON, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize extraction result"), err
	}

	return mcp.NewToolResultText(string(resultJSON)), nil
}
