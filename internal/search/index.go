package search

import (
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/siamtrade/thai-customs-mcp/internal/catalog"
)

// BuildIndex populates the FTS5 chunks table from every markdown file in
// docsFS, then adds one synthetic chunk per catalog part and HS heading so
// the demo inventory is searchable alongside the reference text.
func BuildIndex(db *sql.DB, docsFS fs.FS) error {
	insert, err := db.Prepare(`INSERT INTO chunks (title, content, path) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	err = fs.WalkDir(docsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		src, err := fs.ReadFile(docsFS, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		for _, chunk := range ParseMarkdownSource(src, path) {
			if _, err := insert.Exec(chunk.Title, chunk.Content, chunk.Path); err != nil {
				return fmt.Errorf("index chunk from %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk reference docs: %w", err)
	}

	for _, part := range catalog.Parts() {
		content := fmt.Sprintf("%s (%s). HS code %s, WCO heading %s. Default quantity %d %s.",
			part.DescriptionEN, part.DescriptionTH, part.HSCode, part.WCOCode, part.DefaultQuantity, part.Unit)
		if _, err := insert.Exec("Demo part "+part.PartID, content, "catalog/"+part.PartID); err != nil {
			return fmt.Errorf("index part %s: %w", part.PartID, err)
		}
	}

	for _, heading := range catalog.Headings() {
		content := fmt.Sprintf("HS heading %s: %s", heading.Code, heading.Description)
		if _, err := insert.Exec("HS "+heading.Code, content, "hs/"+heading.Code); err != nil {
			return fmt.Errorf("index heading %s: %w", heading.Code, err)
		}
	}

	return nil
}
