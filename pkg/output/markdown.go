package output

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer converts embedded markdown documents for display.
type MarkdownRenderer struct {
	Format Format
	Width  int // wrap width for terminal rendering, 0 keeps glamour's default
}

// NewMarkdownRenderer creates a renderer for the given output format.
func NewMarkdownRenderer(format Format) *MarkdownRenderer {
	return &MarkdownRenderer{Format: format, Width: 80}
}

// Render converts markdown to terminal output. Plain and JSON formats, and
// any glamour failure, return the content untouched.
func (r *MarkdownRenderer) Render(content string) string {
	if r.Format != FormatTerminal {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
