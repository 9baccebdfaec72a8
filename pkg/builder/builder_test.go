// Test Type: Unit Test
// Description: Tests for URL compilation from component sequences

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/matcher"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

func seqOf(t *testing.T, tokens ...string) sequence.Sequence {
	t.Helper()
	seq, err := sequence.FromTokens(catalog.Default(), tokens, sequence.WithTokenSource(&sequence.CounterSource{}))
	require.NoError(t, err)
	return seq
}

func TestBuild(t *testing.T) {
	foo7 := types.TicketContext{IssuePrefix: "FOO", IssueNumber: "7"}

	tests := []struct {
		name    string
		tokens  []string
		baseURL string
		ctx     types.TicketContext
		want    string
	}{
		{
			name:    "prefix number subdomain",
			tokens:  []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			baseURL: "example.com",
			ctx:     foo7,
			want:    "https://foo-7.example.com",
		},
		{
			name:    "scheme in base url is stripped when not first",
			tokens:  []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			baseURL: "http://example.com/",
			ctx:     foo7,
			want:    "https://foo-7.example.com",
		},
		{
			name:    "base url first keeps normalized scheme",
			tokens:  []string{"baseUrl", "/", "issuePrefix", "-", "[0-9]+"},
			baseURL: "http://example.com//",
			ctx:     foo7,
			want:    "https://example.com/foo-7",
		},
		{
			name:    "ticket type",
			tokens:  []string{"ticketType", "-", "issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			baseURL: "review.example.com",
			ctx:     foo7.WithType("Feature"),
			want:    "https://feature-foo-7.review.example.com",
		},
		{
			name:    "placeholders without context",
			tokens:  []string{"ticketType", "/", "issuePrefix", "-", "[0-9]+", "_", "[a-zA-Z0-9]+", ".", "baseUrl"},
			baseURL: "example.com",
			want:    "https://type/prefix-12345_abc123.example.com",
		},
		{
			name:    "alphanumeric is ticket id without prefix",
			tokens:  []string{"[a-zA-Z0-9]+", ".", "baseUrl"},
			baseURL: "example.com",
			ctx:     types.TicketContext{IssuePrefix: "Foo", IssueNumber: "42"},
			want:    "https://42.example.com",
		},
		{
			name:    "empty sequence",
			tokens:  nil,
			baseURL: "example.com",
			want:    "https://",
		},
		{
			name:    "no base url component",
			tokens:  []string{"issuePrefix", "-", "[0-9]+"},
			baseURL: "example.com",
			ctx:     foo7,
			want:    "https://foo-7",
		},
		{
			name:    "blank base url",
			tokens:  []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			baseURL: "   ",
			ctx:     foo7,
			want:    "https://foo-7.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(seqOf(t, tt.tokens...), tt.baseURL, tt.ctx))
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	ctx := types.TicketContext{IssuePrefix: "ABC", IssueNumber: "99", TicketType: "bug"}
	for _, tokens := range [][]string{
		{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
		{"baseUrl", "/", "ticketType", "/", "issuePrefix", "_", "[a-zA-Z0-9]+"},
		{},
	} {
		seq := seqOf(t, tokens...)
		first := Build(seq, "https://example.com", ctx)
		second := Build(seq, "https://example.com", ctx)
		assert.Equal(t, first, second)

		// instance tokens do not influence the result
		other, err := sequence.FromTokens(catalog.Default(), tokens)
		require.NoError(t, err)
		assert.Equal(t, first, Build(other, "https://example.com", ctx))
	}
}

func TestBuildHasSingleScheme(t *testing.T) {
	// hand-built duplicate base url still yields one scheme at the start
	seq := append(seqOf(t, "issuePrefix", "-", "[0-9]+", ".", "baseUrl"), seqOf(t, "baseUrl")...)
	got := Build(seq, "https://example.com", types.TicketContext{IssuePrefix: "A", IssueNumber: "1"})
	assert.Equal(t, "https://a-1.example.comexample.com", got)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"example.com":                "https://example.com",
		"https://example.com/":       "https://example.com",
		"http://example.com/app///":  "https://example.com/app",
		"  ftp://files.example.com ": "https://files.example.com",
		"":                           "",
		"https://":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeBaseURL(in), "input %q", in)
	}
}

func TestSchemeHelpers(t *testing.T) {
	assert.True(t, HasScheme("https://a"))
	assert.True(t, HasScheme("git+ssh://a"))
	assert.False(t, HasScheme("a.com/https://b"))
	assert.Equal(t, "a.com", StripScheme("https://a.com"))
	assert.Equal(t, "a.com", StripScheme("a.com"))
}

func TestBuildForPreview(t *testing.T) {
	assert.Equal(t, "https://proj-123.example.com", BuildForPreview("PROJ", "123"))
	assert.Equal(t, "https://prefix-12345.example.com", BuildForPreview("", ""))
}

func TestPreviewRoundTrip(t *testing.T) {
	patterns := []types.PatternDef{
		{Pattern: `(`, Enabled: true},
		{Pattern: `^https://([a-z]+-\d+)\.example\.com`, Enabled: true},
	}

	for _, tc := range []struct{ prefix, number string }{
		{"PROJ", "123"},
		{"abc", "7"},
		{"Ops", "40001"},
	} {
		url := BuildForPreview(tc.prefix, tc.number)
		got, ok := matcher.ExtractTicketID(url, patterns, []string{tc.prefix})
		require.True(t, ok, url)
		assert.Equal(t, types.TicketContext{IssuePrefix: tc.prefix, IssueNumber: tc.number}.TicketID(), got)
	}
}
