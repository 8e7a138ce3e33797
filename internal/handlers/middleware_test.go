package handlers

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickingToolHandler struct{}

func (panickingToolHandler) Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	panic("boom")
}

type panickingPromptHandler struct{}

func (panickingPromptHandler) Handle(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	panic("boom")
}

func TestToolMiddlewareRecoversPanics(t *testing.T) {
	handler := WithToolMiddleware("exploding", panickingToolHandler{})

	result, err := handler.Handle(context.Background(), callToolRequest(nil))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "exploding")
}

func TestToolMiddlewarePassesResultsThrough(t *testing.T) {
	handler := WithToolMiddleware("ping", NewPingHandler())

	result, err := handler.Handle(context.Background(), callToolRequest(nil))
	require.NoError(t, err)

	assert.Equal(t, "pong", resultText(t, result))
}

func TestPromptMiddlewareRecoversPanics(t *testing.T) {
	handler := WithPromptMiddleware("exploding", panickingPromptHandler{})

	result, err := handler.Handle(context.Background(), mcp.GetPromptRequest{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "exploding")
}
