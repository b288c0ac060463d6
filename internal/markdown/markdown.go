// Package markdown converts post bodies to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter renders Markdown with pipe tables and strikethrough enabled.
// Raw HTML in posts is passed through. A Converter is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// New creates a new Converter.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
			),
			goldmark.WithParserOptions(
				parser.WithAttribute(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Convert renders body as an HTML fragment.
func (c *Converter) Convert(body string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}
