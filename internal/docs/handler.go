package docs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler serves the bundled customs reference documents as MCP resources.
type Handler struct {
	docsFS  fs.FS
	scanner *Scanner
}

// NewHandler creates a documentation handler over the given filesystem.
func NewHandler(docsFS fs.FS) *Handler {
	return &Handler{
		docsFS:  docsFS,
		scanner: NewScanner(docsFS),
	}
}

// Resources returns the MCP resource descriptors for every bundled document.
func (h *Handler) Resources() ([]mcp.Resource, error) {
	documents, err := h.scanner.ScanDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}

	resources := make([]mcp.Resource, 0, len(documents))
	for _, doc := range documents {
		resources = append(resources, mcp.Resource{
			URI:         doc.URI,
			Name:        doc.Title,
			Description: fmt.Sprintf("Thai customs reference: %s", doc.Title),
			MIMEType:    "text/markdown",
		})
	}

	return resources, nil
}

// ReadResource retrieves the content of a specific reference document.
// The signature matches server.ResourceHandlerFunc so it can be registered
// directly on an MCP server.
func (h *Handler) ReadResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	doc, err := h.scanner.GetDocumentByURI(request.Params.URI)
	if err != nil {
		var docsErr *Error
		if errors.As(err, &docsErr) {
			switch docsErr.Type {
			case ErrorTypeNotFound:
				return nil, fmt.Errorf("resource not found: %s", request.Params.URI)
			case ErrorTypeValidation:
				return nil, fmt.Errorf("invalid resource URI: %s", request.Params.URI)
			default:
				return nil, fmt.Errorf("failed to get document: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	content, err := fs.ReadFile(h.docsFS, doc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
