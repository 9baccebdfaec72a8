package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/ticketlink/pkg/builder"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/style"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Template names
const (
	TemplateValidate = "validate.tmpl"
	TemplateEdit     = "edit.tmpl"
	TemplatePreview  = "preview.tmpl"
	TemplateExtract  = "extract.tmpl"
	TemplateCatalog  = "catalog.tmpl"
	TemplatePattern  = "pattern.tmpl"
	TemplateLinks    = "links.tmpl"
)

// Renderer orchestrates the template-based output rendering pipeline.
// It combines Go templates with lipgloss styling to produce rich terminal output.
//
// The renderer follows a two-phase approach:
//  1. Template expansion: Go templates process the command result
//  2. Style application: [tag]..[/tag] markup is turned into ANSI codes, or
//     stripped when colour is off
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
	markup    *style.MarkupParser
}

var funcs = template.FuncMap{
	"indicator": indicator,
	"tokens":    tokens,
	"styled":    styled,
	"envs":      envs,
	"join":      strings.Join,
}

// NewRenderer creates a new Renderer instance.
//
// Parameters:
//   - w: The io.Writer to write output to (typically os.Stdout)
//   - noColor: If true, all style tags will be stripped for plain text output
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	log.Debug().
		Bool("noColor", noColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("TERM", os.Getenv("TERM")).
		Msg("Creating renderer with color settings")

	tmpl, err := template.New("output").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to parse templates")
	}

	return &Renderer{
		templates: tmpl,
		writer:    w,
		noColor:   noColor,
		markup:    style.NewMarkupParser(),
	}, nil
}

// Render executes the named template with data, applies styling and writes
// the result followed by a newline.
func (r *Renderer) Render(name string, data interface{}) error {
	log := logging.GetLogger("output.Renderer")

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to execute template %s", name)
	}

	templateOutput := strings.TrimRight(buf.String(), "\n")
	log.Trace().Str("template", name).Str("templateOutput", templateOutput).Msg("Template executed")

	return r.write(templateOutput)
}

// RenderError renders an error message with appropriate styling
func (r *Renderer) RenderError(err error) error {
	return r.write("[error]Error:[/error] " + err.Error())
}

// RenderMessage renders a simple message wrapped in one style tag
func (r *Renderer) RenderMessage(tag, message string) error {
	return r.write(fmt.Sprintf("[%s]%s[/%s]", tag, message, tag))
}

func (r *Renderer) write(markup string) error {
	var output string
	if r.noColor {
		output = r.markup.Strip(markup)
	} else {
		output = r.markup.Render(markup)
	}
	_, err := fmt.Fprintln(r.writer, output)
	return err
}

func indicator(valid bool) string {
	if valid {
		return "[success]✓[/success]"
	}
	return "[error]✗[/error]"
}

func tokens(list []string) string {
	if len(list) == 0 {
		return "[muted](empty)[/muted]"
	}
	quoted := make([]string, len(list))
	for i, t := range list {
		quoted[i] = "[code]" + t + "[/code]"
	}
	return strings.Join(quoted, " ")
}

func styled(kind types.Kind, s string) string {
	tag := "code"
	switch kind {
	case types.KindDynamicField:
		tag = "field"
	case types.KindSeparator:
		tag = "separator"
	case types.KindRegexPlaceholder:
		tag = "placeholder"
	}
	return "[" + tag + "]" + s + "[/" + tag + "]"
}

func envs(results builder.Results) []string {
	return types.EnvironmentURLs(results.URLs()).Keys()
}
