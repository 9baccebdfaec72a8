// Package style holds the terminal presentation helpers of the ticketlink
// CLI: adaptive lipgloss colors and styles, a small [tag]...[/tag] markup
// language, terminal detection and glamour Markdown rendering.
//
// Nothing in the engine packages depends on style.
package style
