package render

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	markdownTemplate  = "markdown.tmpl"
	plainTextTemplate = "plain.tmpl"
)

var funcs = template.FuncMap{
	// cell keeps table cells from breaking the Markdown row
	"cell": func(s string) string {
		return strings.ReplaceAll(s, "|", `\|`)
	},
}

var templates = template.Must(template.New("render").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))

// Renderer formats built URLs as copy/paste link blocks. It performs no I/O.
type Renderer struct {
	layout Layout
}

// New returns a Renderer for the given layout
func New(layout Layout) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{layout: layout}, nil
}

// Layout returns the renderer's section layout
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Markdown renders one "###" heading and Environment | Link table per
// populated section
func (r *Renderer) Markdown(urlsByEnv map[string]string) (string, error) {
	return r.execute(markdownTemplate, urlsByEnv)
}

// PlainText renders one heading line and "Label: url" lines per populated
// section
func (r *Renderer) PlainText(urlsByEnv map[string]string) (string, error) {
	return r.execute(plainTextTemplate, urlsByEnv)
}

func (r *Renderer) execute(name string, urlsByEnv map[string]string) (string, error) {
	sections := r.layout.populated(urlsByEnv)
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, name, s); err != nil {
			return "", errors.Wrapf(err, errors.ErrRender, "failed to execute template %s", name)
		}
		blocks = append(blocks, strings.TrimRight(buf.String(), "\n"))
	}
	return strings.Join(blocks, "\n\n"), nil
}

var defaultRenderer = &Renderer{layout: DefaultLayout()}

// RenderMarkdown renders urlsByEnv with the default layout. Environments
// with an empty URL are skipped and so are sections left without rows.
func RenderMarkdown(urlsByEnv map[string]string) string {
	return mustRender(defaultRenderer.Markdown(urlsByEnv))
}

// RenderPlainText is RenderMarkdown for plain text
func RenderPlainText(urlsByEnv map[string]string) string {
	return mustRender(defaultRenderer.PlainText(urlsByEnv))
}

func mustRender(out string, err error) string {
	if err != nil {
		// embedded templates over strings do not fail at runtime
		logger := logging.GetLogger("render")
		logger.Error().Err(err).Msg("rendering failed")
		return ""
	}
	return out
}
