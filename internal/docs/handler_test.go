package docs

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"hs_classification.md": &fstest.MapFile{Data: []byte("# HS classification notes\n\nBrake parts: 8708.30.\n")},
		"ed01_guide.md":        &fstest.MapFile{Data: []byte("# ED01 field guide\n\nDeclared fields.\n")},
		"readme.txt":           &fstest.MapFile{Data: []byte("ignored")},
	}
}

func TestScannerScanDocuments(t *testing.T) {
	documents, err := NewScanner(testFS()).ScanDocuments()
	require.NoError(t, err)
	require.Len(t, documents, 2)

	byURI := make(map[string]DocumentInfo)
	for _, doc := range documents {
		byURI[doc.URI] = doc
	}

	doc, ok := byURI["docs://thai-customs/hs_classification"]
	require.True(t, ok)
	assert.Equal(t, "HS classification notes", doc.Title)
}

func TestScannerGetDocumentByURI(t *testing.T) {
	scanner := NewScanner(testFS())

	doc, err := scanner.GetDocumentByURI("docs://thai-customs/ed01_guide")
	require.NoError(t, err)
	assert.Equal(t, "ED01 field guide", doc.Title)

	_, err = scanner.GetDocumentByURI("docs://thai-customs/missing")
	var docsErr *Error
	require.ErrorAs(t, err, &docsErr)
	assert.Equal(t, ErrorTypeNotFound, docsErr.Type)

	_, err = scanner.GetDocumentByURI("file:///etc/passwd")
	require.ErrorAs(t, err, &docsErr)
	assert.Equal(t, ErrorTypeValidation, docsErr.Type)
}

func TestHandlerResources(t *testing.T) {
	resources, err := NewHandler(testFS()).Resources()
	require.NoError(t, err)
	assert.Len(t, resources, 2)

	for _, r := range resources {
		assert.Equal(t, "text/markdown", r.MIMEType)
		assert.Contains(t, r.URI, URIPrefix)
	}
}

func TestHandlerReadResource(t *testing.T) {
	handler := NewHandler(testFS())

	request := mcp.ReadResourceRequest{}
	request.Params.URI = "docs://thai-customs/hs_classification"

	contents, err := handler.ReadResource(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, "8708.30")
}
