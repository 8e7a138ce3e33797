// Package security provides input validation limits for the Thai Customs MCP server.
package security

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/siamtrade/thai-customs-mcp/internal/declaration"
	"github.com/siamtrade/thai-customs-mcp/internal/logging"
)

const (
	// MaxPayloadItems is the maximum number of commodity lines accepted in
	// a single declaration payload.
	MaxPayloadItems = 500
	// MaxPayloadBytes is the maximum total size of a declaration payload,
	// measured over its JSON encoding.
	MaxPayloadBytes = 1 * 1024 * 1024 // 1MiB
	// MaxFieldLength is the maximum allowed length for any free-text field.
	MaxFieldLength = 2048
	// MaxQueryLength is the maximum allowed length for search and
	// classification queries.
	MaxQueryLength = 1024
	// MaxPDFSizeBytes is the maximum allowed size for documents passed to
	// text extraction.
	MaxPDFSizeBytes = 32 * 1024 * 1024 // 32MB
)

// Error represents a security-related error.
type Error struct {
	Type    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("security error [%s]: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("security error [%s]: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidateQuery checks a free-text query before it reaches the search or
// classification pipelines.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &Error{
			Type:    "EMPTY_QUERY",
			Message: "query cannot be empty",
		}
	}

	if len(query) > MaxQueryLength {
		logging.SecurityEvent(context.Background(), "query_too_long", "medium",
			"Query validation failed: length limit exceeded",
			map[string]interface{}{
				"query_length": len(query),
				"max_length":   MaxQueryLength,
			})

		return &Error{
			Type:    "SIZE_LIMIT_EXCEEDED",
			Message: fmt.Sprintf("query length (%d) exceeds maximum allowed length (%d)", len(query), MaxQueryLength),
		}
	}

	return nil
}

// ValidatePayload checks the shape limits of a declaration payload.
func ValidatePayload(payload declaration.Payload) error {
	logger := logging.WithComponent("security")

	logger.Debug("Starting payload validation",
		slog.Int("item_count", len(payload.Items)),
	)

	if len(payload.Items) > MaxPayloadItems {
		logging.SecurityEvent(context.Background(), "item_limit_exceeded", "high",
			"Payload validation failed: too many commodity lines",
			map[string]interface{}{
				"item_count": len(payload.Items),
				"max_items":  MaxPayloadItems,
			})

		return &Error{
			Type:    "ITEM_LIMIT_EXCEEDED",
			Message: fmt.Sprintf("payload has %d items, maximum is %d", len(payload.Items), MaxPayloadItems),
		}
	}

	if encoded, err := json.Marshal(payload); err == nil && len(encoded) > MaxPayloadBytes {
		logging.SecurityEvent(context.Background(), "payload_too_large", "high",
			"Payload validation failed: total size limit exceeded",
			map[string]interface{}{
				"payload_size": len(encoded),
				"max_size":     MaxPayloadBytes,
			})

		return &Error{
			Type:    "SIZE_LIMIT_EXCEEDED",
			Message: fmt.Sprintf("payload size (%d bytes) exceeds maximum allowed size (%d bytes)", len(encoded), MaxPayloadBytes),
		}
	}

	fields := map[string]string{
		"shipper":        payload.Shipper,
		"consignee":      payload.Consignee,
		"invoice_no":     payload.InvoiceNo,
		"invoice_date":   payload.InvoiceDate,
		"currency":       payload.Currency,
		"incoterm":       payload.Incoterm,
		"origin_country": payload.OriginCountry,
		"port_loading":   payload.PortLoading,
		"port_discharge": payload.PortDischarge,
	}
	for name, value := range fields {
		if err := checkFieldLength(name, value); err != nil {
			return err
		}
	}

	for i, item := range payload.Items {
		if err := checkFieldLength(fmt.Sprintf("items[%d].description", i), item.Description); err != nil {
			return err
		}
		if err := checkFieldLength(fmt.Sprintf("items[%d].hs_code", i), item.HSCode); err != nil {
			return err
		}
	}

	logger.Debug("Payload validation passed",
		slog.Int("item_count", len(payload.Items)),
	)

	return nil
}

// ValidatePDFPath checks that path points at a readable PDF within the
// allowed document root. An empty root disables the root restriction.
func ValidatePDFPath(path, root string) error {
	if strings.TrimSpace(path) == "" {
		return &Error{
			Type:    "EMPTY_PATH",
			Message: "document path cannot be empty",
		}
	}

	cleaned := filepath.Clean(path)

	if strings.ToLower(filepath.Ext(cleaned)) != ".pdf" {
		logging.SecurityEvent(context.Background(), "invalid_extension", "medium",
			"Document path validation failed: not a PDF",
			map[string]interface{}{
				"extension": filepath.Ext(cleaned),
			})

		return &Error{
			Type:    "INVALID_EXTENSION",
			Message: fmt.Sprintf("unsupported document type %q, only .pdf is accepted", filepath.Ext(cleaned)),
		}
	}

	if root != "" {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return &Error{Type: "INVALID_ROOT", Message: "failed to resolve document root", Cause: err}
		}
		absPath, err := filepath.Abs(cleaned)
		if err != nil {
			return &Error{Type: "INVALID_PATH", Message: "failed to resolve document path", Cause: err}
		}
		rel, err := filepath.Rel(absRoot, absPath)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			logging.SecurityEvent(context.Background(), "path_traversal", "high",
				"Document path validation failed: outside document root", nil)

			return &Error{
				Type:    "PATH_OUTSIDE_ROOT",
				Message: "document path is outside the configured document root",
			}
		}
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return &Error{Type: "NOT_FOUND", Message: "document not found or not readable", Cause: err}
	}

	if !info.Mode().IsRegular() {
		return &Error{
			Type:    "NOT_A_FILE",
			Message: "document path does not point to a regular file",
		}
	}

	if info.Size() > MaxPDFSizeBytes {
		logging.SecurityEvent(context.Background(), "size_limit_exceeded", "high",
			"Document path validation failed: size limit exceeded",
			map[string]interface{}{
				"file_size": info.Size(),
				"max_size":  MaxPDFSizeBytes,
			})

		return &Error{
			Type:    "SIZE_LIMIT_EXCEEDED",
			Message: fmt.Sprintf("document size (%d bytes) exceeds maximum allowed size (%d bytes)", info.Size(), MaxPDFSizeBytes),
		}
	}

	return nil
}

func checkFieldLength(name, value string) error {
	if len(value) <= MaxFieldLength {
		return nil
	}

	logging.SecurityEvent(context.Background(), "field_too_long", "medium",
		"Payload validation failed: field length limit exceeded",
		map[string]interface{}{
			"field":      name,
			"length":     len(value),
			"max_length": MaxFieldLength,
		})

	return &Error{
		Type:    "SIZE_LIMIT_EXCEEDED",
		Message: fmt.Sprintf("field %s length (%d) exceeds maximum allowed length (%d)", name, len(value), MaxFieldLength),
	}
}
