package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/siamtrade/thai-customs-mcp/internal/logging"
)

// toolMiddleware wraps a ToolHandler to add correlation ID, logging and recovery.
type toolMiddleware struct {
	name string
	next ToolHandler
}

func (m toolMiddleware) Handle(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	// Correlation and timing
	requestID := uuid.New().String()
	ctx = logging.ContextWithRequestID(ctx, requestID)
	start := time.Now()

	// Extract arguments for logging
	args := request.GetArguments()
	logging.RequestStart(ctx, m.name, args)

	// Panic safety: the client still gets a tool error, not a nil result.
	defer func() {
		if rec := recover(); rec != nil {
			logging.RequestEnd(ctx, m.name, false, time.Since(start), fmt.Errorf("panic: %v", rec))
			result = mcp.NewToolResultError(fmt.Sprintf("internal error in tool %s", m.name))
			err = nil
		}
	}()

	result, err = m.next.Handle(ctx, request)
	logging.RequestEnd(ctx, m.name, err == nil, time.Since(start), err)
	return result, err
}

// WithToolMiddleware decorates a ToolHandler with centralized boilerplate.
func WithToolMiddleware(name string, h ToolHandler) ToolHandler {
	return toolMiddleware{name: name, next: h}
}

// promptMiddleware wraps a PromptHandler to add correlation ID, logging and recovery.
type promptMiddleware struct {
	name string
	next PromptHandler
}

func (m promptMiddleware) Handle(ctx context.Context, request mcp.GetPromptRequest) (result *mcp.GetPromptResult, err error) {
	requestID := uuid.New().String()
	ctx = logging.ContextWithRequestID(ctx, requestID)
	start := time.Now()

	// Normalize arguments to map[string]interface{} for logging
	args := map[string]interface{}{}
	for k, v := range request.Params.Arguments {
		args[k] = v
	}
	logging.RequestStart(ctx, m.name, args)

	defer func() {
		if rec := recover(); rec != nil {
			logging.RequestEnd(ctx, m.name, false, time.Since(start), fmt.Errorf("panic: %v", rec))
			result = nil
			err = fmt.Errorf("internal error in prompt %s", m.name)
		}
	}()

	result, err = m.next.Handle(ctx, request)
	logging.RequestEnd(ctx, m.name, err == nil, time.Since(start), err)
	return result, err
}

// WithPromptMiddleware decorates a PromptHandler with centralized boilerplate.
func WithPromptMiddleware(name string, h PromptHandler) PromptHandler {
	return promptMiddleware{name: name, next: h}
}
