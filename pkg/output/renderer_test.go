// Test Type: Unit Test
// Description: Tests for template rendering of command results

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/builder"
	"github.com/arthur-debert/ticketlink/pkg/commands/edit"
	"github.com/arthur-debert/ticketlink/pkg/commands/extract"
	"github.com/arthur-debert/ticketlink/pkg/commands/list"
	"github.com/arthur-debert/ticketlink/pkg/commands/pattern"
	"github.com/arthur-debert/ticketlink/pkg/commands/preview"
	"github.com/arthur-debert/ticketlink/pkg/commands/validate"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/matcher"
	"github.com/arthur-debert/ticketlink/pkg/rules"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, true)
	require.NoError(t, err)
	require.NoError(t, r.Render(name, data))
	return buf.String()
}

func TestRenderValidate(t *testing.T) {
	result := validate.NewResult([]string{"-", "baseUrl"}, rules.Report{
		rules.BaseURLRequired:  {Valid: true},
		rules.NoLeadingSymbols: {Valid: false, Message: `The sequence cannot start with the separator "-".`},
	})

	out := render(t, TemplateValidate, result)

	assert.Contains(t, out, "Sequence - baseUrl")
	assert.Contains(t, out, "✓ Base URL required")
	assert.Contains(t, out, `✗ No leading symbols  The sequence cannot start with the separator "-".`)
	assert.Contains(t, out, "The URL structure cannot be saved.")
	assert.NotContains(t, out, "[error]")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderEdit(t *testing.T) {
	result := &edit.EditResult{
		Action: edit.ActionRemove,
		Before: []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
		After:  []string{"issuePrefix", "[0-9]+", ".", "baseUrl"},
		Validation: &validate.ValidateResult{
			Tokens:       []string{"issuePrefix", "[0-9]+", ".", "baseUrl"},
			SaveEligible: true,
		},
	}

	out := render(t, TemplateEdit, result)

	assert.Contains(t, out, "remove")
	assert.Contains(t, out, "before  issuePrefix - [0-9]+ . baseUrl")
	assert.Contains(t, out, "after   issuePrefix [0-9]+ . baseUrl")
	assert.Contains(t, out, "The URL structure is valid.")
}

func TestRenderPreview(t *testing.T) {
	t.Run("with environments", func(t *testing.T) {
		result := &preview.PreviewResult{
			Tokens: []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			Ticket: types.TicketContext{IssuePrefix: "ABC", IssueNumber: "1"},
			Sample: builder.BuiltURL{URL: "https://abc-1.example.com", Valid: true},
			Environments: builder.Results{
				"mobile":  {URL: "https://abc-1.-m.example.com", Valid: false, Problem: "hostname label -m starts with '-'"},
				"desktop": {URL: "https://abc-1.shop.example.com", Valid: true},
			},
		}

		out := render(t, TemplatePreview, result)

		assert.Contains(t, out, "Preview ABC-1")
		assert.Contains(t, out, "✓ sample  https://abc-1.example.com")
		assert.Contains(t, out, "✗ mobile  https://abc-1.-m.example.com  hostname label -m starts with '-'")
		assert.Less(t, strings.Index(out, "desktop"), strings.Index(out, "mobile"))
		assert.NotContains(t, out, "No environment")
	})

	t.Run("without environments", func(t *testing.T) {
		out := render(t, TemplatePreview, &preview.PreviewResult{
			Sample: builder.BuiltURL{URL: "https://prefix-12345.example.com", Valid: true},
		})
		assert.Contains(t, out, "No environment has a base URL configured.")
	})
}

func TestRenderExtract(t *testing.T) {
	out := render(t, TemplateExtract, &extract.ExtractResult{
		URL:   "https://example.com/browse/ABC-1",
		Found: true,
		Match: &matcher.Result{TicketID: "ABC-1", Source: matcher.SourcePattern},
	})
	assert.Equal(t, "ABC-1\n", out)

	out = render(t, TemplateExtract, &extract.ExtractResult{URL: "https://example.com/"})
	assert.Equal(t, "No ticket id found in https://example.com/\n", out)

	out = render(t, TemplateExtract, &extract.ExtractResult{URL: "https://example.com/", Prefixes: []string{"ABC", "DEF"}})
	assert.Equal(t, "No ticket id found in https://example.com/ (prefixes: ABC, DEF)\n", out)
}

func TestRenderCatalog(t *testing.T) {
	result, err := list.ListComponents(list.ListComponentsOptions{})
	require.NoError(t, err)

	out := render(t, TemplateCatalog, result)

	assert.Contains(t, out, "Components")
	assert.Contains(t, out, "issuePrefix")
	assert.Contains(t, out, "Issue Prefix  permanent")
	assert.Contains(t, out, "[a-zA-Z0-9]+")
}

func TestRenderPattern(t *testing.T) {
	out := render(t, TemplatePattern, &pattern.CheckPatternResult{
		Pattern: `/t/(\d+)`,
		Valid:   true,
		Samples: []pattern.SampleMatch{{URL: "https://x.test/t/1", Found: true, TicketID: "ABC-1"}},
	})
	assert.Contains(t, out, `✓ /t/(\d+) compiles`)
	assert.Contains(t, out, "✓ https://x.test/t/1  ABC-1")

	out = render(t, TemplatePattern, &pattern.CheckPatternResult{Pattern: "(", Error: "invalid pattern"})
	assert.Contains(t, out, "✗ invalid pattern")
}

func TestRenderLinksWarnings(t *testing.T) {
	out := render(t, TemplateLinks, map[string]interface{}{
		"URLs": builder.Results{
			"bo":      {URL: "https://a-1.-cms.test", Problem: "bad label"},
			"desktop": {URL: "https://a-1.test", Valid: true},
		},
	})
	assert.Equal(t, "! bo: https://a-1.-cms.test  bad label\n", out)
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, true)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrInvalidInput, "boom")))
	require.NoError(t, r.RenderMessage("warning", "careful"))

	assert.Contains(t, buf.String(), "Error: ")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "careful\n")
	assert.NotContains(t, buf.String(), "[warning]")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := NewRenderer(&bytes.Buffer{}, true)
	require.NoError(t, err)

	err = r.Render("nope.tmpl", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestEncode(t *testing.T) {
	data := map[string]interface{}{"ticket": "ABC-1"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, data, FormatJSON))
	assert.Equal(t, "{\n  \"ticket\": \"ABC-1\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, data, FormatYAML))
	assert.Equal(t, "ticket: ABC-1\n", buf.String())

	err := Encode(&buf, data, "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.False(t, IsStructured("markdown"))
}
