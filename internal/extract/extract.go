// Package extract pulls plain text out of shipping documents (commercial
// invoices, packing lists, transport documents) supplied as PDF files.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/siamtrade/thai-customs-mcp/internal/logging"
)

// Page describes the extraction outcome for a single PDF page.
type Page struct {
	Page      int `json:"page"`
	CharCount int `json:"char_count"`
}

// Extraction is the result of extracting text from one document.
type Extraction struct {
	PageCount int     `json:"page_count"`
	Pages     []Page  `json:"pages"`
	Text      *string `json:"text"`
	Warning   string  `json:"warning,omitempty"`
}

// FromFile extracts the text layer of the PDF at path, page by page.
// A PDF without any extractable text (typically a scanned document) yields
// a nil Text and a warning rather than an error.
func FromFile(ctx context.Context, path string) (*Extraction, error) {
	start := time.Now()
	logger := logging.WithComponent("extract")

	f, reader, err := pdf.Open(path)
	if err != nil {
		logging.ExtractionEvent(ctx, 0, 0, time.Since(start), err)
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	result := &Extraction{
		PageCount: reader.NumPage(),
		Pages:     make([]Page, 0, reader.NumPage()),
	}

	var chunks []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			result.Pages = append(result.Pages, Page{Page: i})
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not void the whole document.
			logger.WarnContext(ctx, "Failed to extract page text",
				slog.Int("page", i),
				slog.String("error", err.Error()),
			)
			result.Pages = append(result.Pages, Page{Page: i})
			continue
		}

		result.Pages = append(result.Pages, Page{Page: i, CharCount: len(pageText)})
		chunks = append(chunks, pageText)
	}

	text := strings.TrimSpace(strings.Join(chunks, "\n"))
	if text == "" {
		result.Warning = "no text extracted (the document may be a scanned PDF without a text layer)"
		logging.ExtractionEvent(ctx, result.PageCount, 0, time.Since(start), nil)
		return result, nil
	}

	result.Text = &text
	logging.ExtractionEvent(ctx, result.PageCount, len(text), time.Since(start), nil)
	return result, nil
}
