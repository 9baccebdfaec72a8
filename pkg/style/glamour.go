package style

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders Markdown for the terminal
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", "auto" or a style file path
	Width int    // word wrap width, 0 leaves lines alone
}

// NewGlamourRenderer creates a renderer with automatic style detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		Style: "auto",
	}
}

// Render converts Markdown to styled terminal output. On any failure the
// Markdown is returned unchanged.
func (r *GlamourRenderer) Render(markdown string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
