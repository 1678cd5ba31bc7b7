// Package render turns extracted library records into documents: it renders
// Markdown descriptions, annotates examples with configured handlers, and
// executes the document templates.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown renders Markdown text to HTML with goldmark. It satisfies the
// extractor's Renderer interface.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New()}
}

// Render converts Markdown text to HTML markup.
func (m *Markdown) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
