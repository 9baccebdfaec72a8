// Test Type: Unit Test
// Description: Tests for ticket id extraction, normalization and pattern checks

package matcher

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

func enabled(patterns ...string) []types.PatternDef {
	defs := make([]types.PatternDef, len(patterns))
	for i, p := range patterns {
		defs[i] = types.PatternDef{Pattern: p, Enabled: true}
	}
	return defs
}

func TestExtractTicketID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		patterns []types.PatternDef
		prefixes []string
		want     string
		found    bool
	}{
		{
			name:     "capture group is upper-cased",
			url:      "https://tracker.example.com/browse/proj-12",
			patterns: enabled(`/browse/([A-Za-z]+-\d+)`),
			want:     "PROJ-12",
			found:    true,
		},
		{
			name:     "digits only candidate gets first prefix",
			url:      "https://tracker.example.com/issues/123",
			patterns: enabled(`/issues/(\d+)`),
			prefixes: []string{"ABC", "DEF"},
			want:     "ABC-123",
			found:    true,
		},
		{
			name:     "digits only without prefixes stays bare",
			url:      "https://tracker.example.com/issues/123",
			patterns: enabled(`/issues/(\d+)`),
			want:     "123",
			found:    true,
		},
		{
			name:     "malformed pattern is inert",
			url:      "https://tracker.example.com/ABC-42",
			patterns: enabled(`(`, `(ABC-\d+)`),
			want:     "ABC-42",
			found:    true,
		},
		{
			name: "disabled pattern is skipped",
			url:  "https://tracker.example.com/ABC-42/x-9",
			patterns: []types.PatternDef{
				{Pattern: `/(x-\d+)`, Enabled: false},
				{Pattern: `/(ABC-\d+)`, Enabled: true},
			},
			want:  "ABC-42",
			found: true,
		},
		{
			name:     "first matching pattern wins",
			url:      "https://tracker.example.com/ABC-1/DEF-2",
			patterns: enabled(`(DEF-\d+)`, `(ABC-\d+)`),
			want:     "DEF-2",
			found:    true,
		},
		{
			name:     "pattern without capture group falls through",
			url:      "https://tracker.example.com/ABC-1",
			patterns: enabled(`ABC-\d+`, `(ABC-\d+)`),
			want:     "ABC-1",
			found:    true,
		},
		{
			name:     "empty capture falls through",
			url:      "https://tracker.example.com/ABC-1",
			patterns: enabled(`(z*)ABC`, `(ABC-\d+)`),
			want:     "ABC-1",
			found:    true,
		},
		{
			name:     "prefix fallback is case-insensitive",
			url:      "https://git.example.com/branches/feature/abc-77-login",
			patterns: enabled(`/browse/(\w+-\d+)`),
			prefixes: []string{"XYZ", "ABC"},
			want:     "ABC-77",
			found:    true,
		},
		{
			name:     "pattern list takes precedence over prefixes",
			url:      "https://tracker.example.com/browse/OPS-5?from=ABC-9",
			patterns: enabled(`/browse/(\w+-\d+)`),
			prefixes: []string{"ABC"},
			want:     "OPS-5",
			found:    true,
		},
		{
			name:     "prefixes are escaped",
			url:      "https://tracker.example.com/A.C-1 ABC-2",
			prefixes: []string{"A.C"},
			want:     "A.C-1",
			found:    true,
		},
		{
			name:     "escaped prefix does not act as wildcard",
			url:      "https://tracker.example.com/ABC-2",
			prefixes: []string{"A.C"},
		},
		{
			name:     "empty prefixes are ignored",
			url:      "https://tracker.example.com/-5",
			prefixes: []string{"", "  "},
		},
		{
			name: "nothing configured",
			url:  "https://tracker.example.com/ABC-1",
		},
		{
			name:     "named group before unnamed group is first",
			url:      "https://tracker.example.com/projects/proj/issues/42",
			patterns: enabled(`/projects/(?<project>[a-z]+)/issues/(\d+)`),
			prefixes: []string{"ABC"},
			want:     "PROJ",
			found:    true,
		},
		{
			name:     "lookbehind is not a group",
			url:      "https://tracker.example.com/t/77",
			patterns: enabled(`(?<=/t/)(\d+)`),
			prefixes: []string{"ABC"},
			want:     "ABC-77",
			found:    true,
		},
		{
			name:     "no match",
			url:      "https://tracker.example.com/",
			patterns: enabled(`/browse/(\w+-\d+)`),
			prefixes: []string{"ABC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractTicketID(tt.url, tt.patterns, tt.prefixes)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestECMAScriptDialect(t *testing.T) {
	m := New(enabled(`ticket=(?<id>[a-z]+-\d+)`), nil)
	got, ok := m.Extract("https://example.com/?ticket=web-3")
	require.True(t, ok)
	assert.Equal(t, "WEB-3", got)
}

func TestExplain(t *testing.T) {
	m := New(enabled(`/issues/(\d+)`), []string{"ABC"})

	res, ok := m.Explain("https://example.com/issues/8")
	require.True(t, ok)
	assert.Equal(t, Result{TicketID: "ABC-8", Source: SourcePattern, Pattern: `/issues/(\d+)`, Candidate: "8"}, res)

	res, ok = m.Explain("https://example.com/abc-9")
	require.True(t, ok)
	assert.Equal(t, Result{TicketID: "ABC-9", Source: SourcePrefix, Candidate: "abc-9"}, res)
}

func TestInvalid(t *testing.T) {
	m := New([]types.PatternDef{
		{Pattern: `(`, Enabled: true},
		{Pattern: `[`, Enabled: false},
		{Pattern: `(ok-\d+)`, Enabled: true},
	}, []string{" ABC "})

	invalid := m.Invalid()
	require.Len(t, invalid, 1)
	assert.Equal(t, "(", invalid[0].Pattern)
	assert.Error(t, invalid[0].Err)
	assert.Equal(t, []string{"ABC"}, m.Prefixes())
}

func TestTimeoutCountsAsNoMatch(t *testing.T) {
	m := New(enabled(`(a+)+$`), nil, WithTimeout(time.Millisecond))
	input := "https://example.com/" + strings.Repeat("a", 64) + "!"
	assert.NotPanics(t, func() {
		_, ok := m.Extract(input)
		assert.False(t, ok)
	})
}

func TestCheckPattern(t *testing.T) {
	assert.NoError(t, CheckPattern(`/browse/([A-Z]+-\d+)`))
	assert.NoError(t, CheckPattern(`(?<id>\d+)`))

	for _, bad := range []string{"", "   ", "(", `[a-`, `ABC-\d+`} {
		err := CheckPattern(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern), "pattern %q", bad)
	}
}

func TestUnnameGroups(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{`/issues/(\d+)`, `/issues/(\d+)`},
		{`(?<p>[a-z]+)/(\d+)`, `([a-z]+)/(\d+)`},
		{`(?'p'[a-z]+)-(\d+)`, `([a-z]+)-(\d+)`},
		{`(?<=/t/)(?<id>\d+)(?<!x)`, `(?<=/t/)(\d+)(?<!x)`},
		{`(?:a)(?<id>\d+)`, `(?:a)(\d+)`},
		{`[(?<x>](?<id>\d+)`, `[(?<x>](\d+)`},
		{`\(?<x>y\)`, `\(?<x>y\)`},
		{`(x)(?<d>\d)\k<d>0`, `(x)(\d)\2(?:)0`},
		{`\k<d>(?<d>a)`, `\1(?:)(a)`},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, unnameGroups(tt.expr))
		})
	}
}

func TestBackreferenceAfterUnnaming(t *testing.T) {
	m := New(enabled(`/(?<k>[a-z]+)-\k<k>/(\d+)`), nil)
	got, ok := m.Extract("https://example.com/ab-ab/5")
	require.True(t, ok)
	assert.Equal(t, "AB", got)
}
