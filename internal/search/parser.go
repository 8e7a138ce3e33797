package search

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseMarkdownSource chunks markdown source into indexable results, one
// chunk per H1/H2 section. The path is recorded on every chunk.
func ParseMarkdownSource(src []byte, path string) []Result {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var chunks []Result
	var currentTitle string
	var buffer strings.Builder

	flush := func() {
		if buffer.Len() == 0 {
			return
		}
		chunks = append(chunks, Result{
			Title:   currentTitle,
			Content: strings.TrimSpace(buffer.String()),
			Path:    path,
		})
		buffer.Reset()
	}

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch node := n.(type) {
		case *ast.Heading:
			// Start a new chunk on H1/H2; deeper headings stay inline.
			if node.Level <= 2 {
				flush()
				currentTitle = string(node.Text(src))
			}
			buffer.WriteString("\n" + string(node.Text(src)) + "\n")
		case *ast.Paragraph:
			buffer.WriteString("\n" + string(node.Text(src)) + "\n")
		case *ast.FencedCodeBlock:
			writeCodeLines(&buffer, node.Lines(), src)
		case *ast.CodeBlock:
			writeCodeLines(&buffer, node.Lines(), src)
		case *ast.CodeSpan:
			textBytes := node.Text(src)
			if len(textBytes) > 0 {
				buffer.WriteString(" `" + string(textBytes) + "` ")
			}
		case *ast.List:
			buffer.WriteString("\n" + string(node.Text(src)) + "\n")
		}

		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(doc)
	flush()
	return chunks
}

func writeCodeLines(buffer *strings.Builder, lines *text.Segments, src []byte) {
	var code strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(src))
	}
	if code.Len() > 0 {
		buffer.WriteString("\n" + code.String() + "\n")
	}
}
