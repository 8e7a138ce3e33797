package docs

import (
	"bufio"
	"bytes"
	"io/fs"
	"path"
	"strings"
)

// URIPrefix is the scheme+namespace every reference resource URI starts with.
const URIPrefix = "docs://thai-customs/"

// DocumentInfo contains metadata about one bundled reference document.
type DocumentInfo struct {
	Path  string
	URI   string
	Title string
}

// Scanner discovers the bundled customs reference documents.
type Scanner struct {
	docsFS fs.FS
}

// NewScanner creates a scanner over the given documentation filesystem.
func NewScanner(docsFS fs.FS) *Scanner {
	return &Scanner{docsFS: docsFS}
}

// ScanDocuments returns metadata for every markdown document found.
func (s *Scanner) ScanDocuments() ([]DocumentInfo, error) {
	var documents []DocumentInfo

	err := fs.WalkDir(s.docsFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		info, err := s.parseDocumentInfo(p)
		if err != nil {
			return err
		}

		documents = append(documents, info)
		return nil
	})
	if err != nil {
		return nil, &Error{Type: ErrorTypeIO, Message: "failed to walk documentation directory", Err: err}
	}

	return documents, nil
}

// GetDocumentByURI resolves a docs:// URI to the matching document.
func (s *Scanner) GetDocumentByURI(uri string) (*DocumentInfo, error) {
	if !strings.HasPrefix(uri, URIPrefix) {
		return nil, &Error{Type: ErrorTypeValidation, Message: "unsupported resource URI: " + uri}
	}

	documents, err := s.ScanDocuments()
	if err != nil {
		return nil, err
	}

	for i := range documents {
		if documents[i].URI == uri {
			return &documents[i], nil
		}
	}

	return nil, &Error{Type: ErrorTypeNotFound, Message: "no document for URI: " + uri}
}

func (s *Scanner) parseDocumentInfo(p string) (DocumentInfo, error) {
	name := strings.TrimSuffix(path.Base(p), ".md")

	info := DocumentInfo{
		Path:  p,
		URI:   URIPrefix + name,
		Title: strings.ReplaceAll(name, "_", " "),
	}

	// Prefer the first H1 as the display title.
	src, err := fs.ReadFile(s.docsFS, p)
	if err != nil {
		return info, &Error{Type: ErrorTypeIO, Message: "failed to read document", Err: err}
	}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			info.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			break
		}
	}

	return info, nil
}
