package topics

import (
	"github.com/arthur-debert/ticketlink/pkg/style"
)

// MarkdownRenderer renders .md topics with glamour. Other formats, and all
// topics while Enabled reports false, pass through unchanged.
type MarkdownRenderer struct {
	Glamour *style.GlamourRenderer

	// Enabled is consulted on every render; nil means always on
	Enabled func() bool
}

// NewMarkdownRenderer creates a markdown renderer using glamour with auto-detection
func NewMarkdownRenderer(enabled func() bool) *MarkdownRenderer {
	return &MarkdownRenderer{
		Glamour: style.NewGlamourRenderer(),
		Enabled: enabled,
	}
}

// Render converts markdown topics to styled terminal output
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" || r.Glamour == nil {
		return content
	}
	if r.Enabled != nil && !r.Enabled() {
		return content
	}
	return r.Glamour.Render(content)
}
