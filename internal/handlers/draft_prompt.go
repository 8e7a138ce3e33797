package handlers

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

//go:embed templates/draft_declaration.md
var draftDeclarationTemplate string

// DraftPromptHandler serves the draft_declaration prompt, which walks a
// client through gathering shipment details and calling the drafting tools.
type DraftPromptHandler struct{}

var _ PromptHandler = &DraftPromptHandler{}

// NewDraftPromptHandler creates the draft_declaration prompt handler.
func NewDraftPromptHandler() *DraftPromptHandler {
	return &DraftPromptHandler{}
}

// Handle renders the declaration drafting prompt for the given request.
func (h DraftPromptHandler) Handle(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments

	shipmentRequest := args["request"]
	if shipmentRequest == "" {
		shipmentRequest = "(no shipment details provided yet; ask the user for them)"
	}

	// Load prompt template from file or embedded content
	templateContent, err := loadPromptTemplate("resources/prompts/draft_declaration.md", draftDeclarationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	promptText := strings.Replace(templateContent, "{{.Request}}", shipmentRequest, 1)

	result := mcp.NewGetPromptResult(
		"Thai import declaration drafting workflow",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(promptText),
			),
		},
	)

	return result, nil
}

// loadPromptTemplate loads the prompt template with filesystem fallback
func loadPromptTemplate(templatePath string, embeddedTemplate string) (string, error) {
	// Try to load from filesystem first (for development)
	if content, err := os.ReadFile(templatePath); err == nil {
		return string(content), nil
	}

	// Fallback to the embedded template
	if embeddedTemplate != "" {
		return embeddedTemplate, nil
	}

	return "", fmt.Errorf("template not found: %s", templatePath)
}
