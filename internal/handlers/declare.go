package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/declaration"
	"github.com/siamtrade/thai-customs-mcp/internal/logging"
	"github.com/siamtrade/thai-customs-mcp/internal/narrative"
	"github.com/siamtrade/thai-customs-mcp/internal/security"
)

// DeclareHandler drafts ED01 declarations from invoice and transport data.
type DeclareHandler struct {
	drafter   *declaration.Drafter
	generator *narrative.Generator
}

var _ ToolHandler = &DeclareHandler{}

// NewDeclareHandler creates the draft_thai_declaration tool handler.
func NewDeclareHandler(drafter *declaration.Drafter, generator *narrative.Generator) *DeclareHandler {
	return &DeclareHandler{
		drafter:   drafter,
		generator: generator,
	}
}

// Handle builds the ED01 draft and, when requested, attaches the Thai
// narrative. Narrative failures degrade to a draft-only response.
func (h DeclareHandler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	payloadValue, exists := args["payload"]
	if !exists {
		return mcp.NewToolResultError("Missing required parameter 'payload'. Provide the invoice/BL data as an object with shipper, consignee, invoice fields and an 'items' array."), nil
	}

	payload, err := parsePayload(payloadValue)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid payload: %v. Each item needs description, hs_code, quantity, unit_price and gross_weight.", err)), nil
	}

	if err := security.ValidatePayload(payload); err != nil {
		logging.DeclarationEvent(ctx, len(payload.Items), 0, false, err)
		return mcp.NewToolResultError(fmt.Sprintf("Payload rejected: %v", err)), nil
	}

	includeNarrative := false
	if narrativeValue, exists := args["include_narrative"]; exists {
		flag, ok := narrativeValue.(bool)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("Parameter 'include_narrative' must be a boolean. Received: %T", narrativeValue)), nil
		}
		includeNarrative = flag
	}

	draft := h.drafter.Draft(payload)

	response := struct {
		declaration.ED01
		NarrativeError string `json:"narrative_error,omitempty"`
	}{ED01: draft}

	if includeNarrative {
		text, err := h.generator.Generate(ctx, draft)
		if err != nil {
			// The draft is still useful without the narrative.
			logging.WithContext(ctx).Warn("Narrative generation failed",
				slog.String("error", err.Error()),
			)
			response.NarrativeError = err.Error()
		} else {
			response.Narrative = text
		}
	}

	logging.DeclarationEvent(ctx, len(draft.Commodities), draft.Invoice.CustomsValue, response.Narrative != "", nil)

	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to serialize declaration draft"), err
	}

	return mcp.NewToolResultText(string(resultJSON)), nil
}

// parsePayload converts the raw tool argument into a typed payload by
// round-tripping through JSON.
func parsePayload(value interface{}) (declaration.Payload, error) {
	raw, ok := value.(map[string]interface{})
	if !ok {
		return declaration.Payload{}, fmt.Errorf("payload must be an object (received %T)", value)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return declaration.Payload{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	var payload declaration.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return declaration.Payload{}, fmt.Errorf("invalid payload format: %w", err)
	}

	return payload, nil
}
