package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// PingHandler answers liveness checks.
type PingHandler struct{}

var _ ToolHandler = &PingHandler{}

// NewPingHandler creates the ping tool handler.
func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

// Handle responds with "pong".
func (h PingHandler) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}
