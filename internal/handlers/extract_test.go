package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHandler(t *testing.T) {
	t.Run("rejects a missing path", func(t *testing.T) {
		handler := NewExtractHandler(t.TempDir())

		result, err := handler.Handle(context.Background(), callToolRequest(nil))
		require.NoError(t, err)

		assert.True(t, result.IsError)
	})

	t.Run("refuses to run without a document root", func(t *testing.T) {
		handler := NewExtractHandler("")

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"path": "invoice.pdf",
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "DOCUMENT_ROOT")
	})

	t.Run("rejects non-PDF extensions", func(t *testing.T) {
		handler := NewExtractHandler(t.TempDir())

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"path": "invoice.docx",
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "INVALID_EXTENSION")
	})

	t.Run("rejects paths escaping the document root", func(t *testing.T) {
		handler := NewExtractHandler(t.TempDir())

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"path": filepath.Join("..", "..", "etc", "secrets.pdf"),
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "PATH_OUTSIDE_ROOT")
	})

	t.Run("reports unreadable PDFs as tool errors", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "invoice.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a real pdf"), 0o600))

		handler := NewExtractHandler(root)

		result, err := handler.Handle(context.Background(), callToolRequest(map[string]interface{}{
			"path": "invoice.pdf",
		}))
		require.NoError(t, err)

		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "extraction failed")
	})
}
