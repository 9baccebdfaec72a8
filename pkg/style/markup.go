package style

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type markupTag struct {
	style   lipgloss.Style
	pattern *regexp.Regexp
}

// MarkupParser expands [tag]text[/tag] markup into lipgloss styled text.
// Unknown tags are left as they are.
type MarkupParser struct {
	tags map[string]markupTag
}

// NewMarkupParser creates a parser with the default tag set
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: make(map[string]markupTag)}
	for name, s := range map[string]lipgloss.Style{
		"title":       TitleStyle,
		"success":     SuccessStyle,
		"error":       ErrorStyle,
		"warning":     WarningStyle,
		"muted":       MutedStyle,
		"code":        CodeStyle,
		"url":         URLStyle,
		"field":       FieldStyle,
		"separator":   SeparatorStyle,
		"placeholder": PlaceholderStyle,
		"bold":        lipgloss.NewStyle().Bold(true),
	} {
		p.AddStyle(name, s)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, s lipgloss.Style) {
	p.tags[tag] = markupTag{
		style:   s,
		pattern: regexp.MustCompile(`(?s)\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`),
	}
}

// Render expands every known tag
func (p *MarkupParser) Render(text string) string {
	return p.expand(text, func(s lipgloss.Style, content string) string {
		return s.Render(content)
	})
}

// Strip removes known tags and keeps their content
func (p *MarkupParser) Strip(text string) string {
	return p.expand(text, func(_ lipgloss.Style, content string) string {
		return content
	})
}

func (p *MarkupParser) expand(text string, apply func(lipgloss.Style, string) string) string {
	names := make([]string, 0, len(p.tags))
	for name := range p.tags {
		names = append(names, name)
	}
	sort.Strings(names)

	// nested tags need more than one pass
	for {
		before := text
		for _, name := range names {
			tag := p.tags[name]
			text = tag.pattern.ReplaceAllStringFunc(text, func(match string) string {
				return apply(tag.style, tag.pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

var defaultParser = NewMarkupParser()

// Render expands markup with the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip removes markup with the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
