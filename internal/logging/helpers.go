// Package logging provides helper functions for common logging patterns.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// RequestStart logs the beginning of an MCP request
func RequestStart(ctx context.Context, toolName string, params map[string]interface{}) {
	logger := WithTool(toolName)

	// Sanitize parameters for logging (exclude large payload content)
	sanitizedParams := sanitizeParams(params)

	logger.InfoContext(ctx, "MCP request started",
		slog.Any("params", sanitizedParams),
		slog.Time("start_time", time.Now()),
	)
}

// RequestEnd logs the completion of an MCP request
func RequestEnd(ctx context.Context, toolName string, success bool, duration time.Duration, err error) {
	logger := WithTool(toolName)

	if err != nil {
		logger.ErrorContext(ctx, "MCP request failed",
			slog.Bool("success", success),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
	} else {
		logger.InfoContext(ctx, "MCP request completed",
			slog.Bool("success", success),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
	}
}

// SecurityEvent logs security-related events
func SecurityEvent(ctx context.Context, eventType string, severity string, message string, details map[string]interface{}) {
	logger := WithComponent("security")

	switch severity {
	case "critical", "high":
		if details != nil {
			logger.ErrorContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
				slog.Any("details", details),
			)
		} else {
			logger.ErrorContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
			)
		}
	case "medium":
		if details != nil {
			logger.WarnContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
				slog.Any("details", details),
			)
		} else {
			logger.WarnContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
			)
		}
	default:
		if details != nil {
			logger.InfoContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
				slog.Any("details", details),
			)
		} else {
			logger.InfoContext(ctx, message,
				slog.String("event_type", eventType),
				slog.String("severity", severity),
			)
		}
	}
}

// SearchEvent logs reference search events
func SearchEvent(ctx context.Context, query string, resultCount int, duration time.Duration, err error) {
	logger := WithComponent("search")

	if err != nil {
		logger.ErrorContext(ctx, "Search query failed",
			slog.String("query_hash", hashString(query)), // Hash query for privacy
			slog.Int("result_count", resultCount),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
	} else {
		logger.InfoContext(ctx, "Search query completed",
			slog.String("query_hash", hashString(query)), // Hash query for privacy
			slog.Int("result_count", resultCount),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
	}
}

// ClassificationEvent logs part classification events
func ClassificationEvent(ctx context.Context, candidateCount int, matched bool, duration time.Duration) {
	logger := WithComponent("classify")

	logger.InfoContext(ctx, "Classification completed",
		slog.Int("candidate_count", candidateCount),
		slog.Bool("matched", matched),
		slog.Duration("duration", duration),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

// DeclarationEvent logs ED01 drafting events
func DeclarationEvent(ctx context.Context, itemCount int, customsValue float64, narrative bool, err error) {
	logger := WithComponent("declaration")

	if err != nil {
		logger.ErrorContext(ctx, "Declaration drafting failed",
			slog.Int("item_count", itemCount),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
	} else {
		logger.InfoContext(ctx, "Declaration drafted",
			slog.Int("item_count", itemCount),
			slog.Float64("customs_value", customsValue),
			slog.Bool("narrative", narrative),
		)
	}
}

// ExtractionEvent logs document text extraction events
func ExtractionEvent(ctx context.Context, pageCount int, charCount int, duration time.Duration, err error) {
	logger := WithComponent("extract")

	if err != nil {
		logger.ErrorContext(ctx, "Document extraction failed",
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
	} else {
		logger.InfoContext(ctx, "Document extracted",
			slog.Int("page_count", pageCount),
			slog.Int("char_count", charCount),
			slog.Duration("duration", duration),
			slog.Int64("duration_ms", duration.Milliseconds()),
		)
	}
}

// FileOperation logs file-related operations
func FileOperation(ctx context.Context, component string, operation string, path string, err error) {
	logger := WithComponent(component)

	if err != nil {
		logger.ErrorContext(ctx, "File operation failed",
			slog.String("operation", operation),
			slog.String("path_type", getPathType(path)), // Avoid logging full paths
			slog.String("error", err.Error()),
			slog.String("error_type", getErrorType(err)),
		)
	} else {
		logger.DebugContext(ctx, "File operation completed",
			slog.String("operation", operation),
			slog.String("path_type", getPathType(path)), // Avoid logging full paths
		)
	}
}

// sanitizeParams removes or truncates large parameters for logging
func sanitizeParams(params map[string]interface{}) map[string]interface{} {
	if params == nil {
		return nil
	}

	sanitized := make(map[string]interface{})

	for key, value := range params {
		switch key {
		case "payload":
			// For declaration payloads, only log shape metadata
			if m, ok := value.(map[string]interface{}); ok {
				itemCount := 0
				if items, ok := m["items"].([]interface{}); ok {
					itemCount = len(items)
				}
				sanitized[key] = map[string]interface{}{
					"field_count": len(m),
					"item_count":  itemCount,
				}
			} else {
				sanitized[key] = fmt.Sprintf("%T", value)
			}
		case "path":
			// Never log full filesystem paths
			if str, ok := value.(string); ok {
				sanitized[key] = map[string]interface{}{
					"length":    len(str),
					"path_type": getPathType(str),
				}
			}
		default:
			sanitized[key] = value
		}
	}

	return sanitized
}

// getErrorType extracts error type for classification
func getErrorType(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline"):
		return "timeout"
	case strings.Contains(errStr, "security"):
		return "security"
	case strings.Contains(errStr, "validation"):
		return "validation"
	case strings.Contains(errStr, "narrative"):
		return "narrative"
	case strings.Contains(errStr, "extract"):
		return "extraction"
	}

	return "unknown"
}

// getPathType returns a safe representation of file paths
func getPathType(path string) string {
	if strings.Contains(path, "temp") || strings.Contains(path, "tmp") {
		return "temporary"
	} else if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return "pdf"
	} else if strings.HasSuffix(path, ".db") {
		return "database"
	}
	return "other"
}

// hashString creates a simple hash of a string for privacy
func hashString(s string) string {
	if len(s) == 0 {
		return "empty"
	}

	// Simple hash for privacy - just use length and first/last char
	first := string(s[0])
	last := string(s[len(s)-1])
	return fmt.Sprintf("len_%d_%s_%s", len(s), first, last)
}
