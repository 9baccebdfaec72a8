// Test Type: Unit Test
// Description: Tests for components, ticket contexts and environment maps

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

func TestComponentID(t *testing.T) {
	prefix := &Entry{ID: "issue-prefix", Kind: KindDynamicField, Field: FieldIssuePrefix, Permanent: true}
	dash := &Entry{ID: "separator-dash", Kind: KindSeparator, Literal: "-"}

	assert.Equal(t, "issue-prefix", Component{Entry: prefix}.ID())
	assert.Equal(t, "separator-dash-c1", Component{Entry: dash, Instance: "c1"}.ID())
	assert.Equal(t, "separator-dash", Component{Entry: dash, Instance: "c1"}.BaseID())

	assert.True(t, Component{Entry: prefix}.Is(FieldIssuePrefix))
	assert.False(t, Component{Entry: prefix}.Is(FieldBaseURL))
	assert.True(t, Component{Entry: prefix}.Permanent())
	assert.True(t, Component{Entry: dash}.IsSeparator())
	assert.False(t, Component{Entry: dash}.IsPlaceholder())
	assert.False(t, prefix.Repeatable())
	assert.True(t, dash.Repeatable())
}

func TestComponentWithoutEntry(t *testing.T) {
	var c Component
	assert.Equal(t, "", c.ID())
	assert.Equal(t, Kind(""), c.Kind())
	assert.Equal(t, FieldNone, c.Field())
	assert.False(t, c.Permanent())
	assert.False(t, c.IsSeparator())
}

func TestParseTicketID(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		number string
	}{
		{"upper", "PROJ-123", "PROJ", "123"},
		{"lower", "proj-9", "PROJ", "9"},
		{"padded", "  AB2-0042 ", "AB2", "0042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := ParseTicketID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, ctx.IssuePrefix)
			assert.Equal(t, tt.number, ctx.IssueNumber)
			assert.Equal(t, tt.prefix+"-"+tt.number, ctx.TicketID())
		})
	}

	for _, bad := range []string{"", "123", "PROJ", "PROJ-", "-12", "PR OJ-1", "PROJ-12a"} {
		_, err := ParseTicketID(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTicket), "input %q", bad)
	}
}

func TestTicketContext(t *testing.T) {
	assert.Equal(t, "42", TicketContext{IssueNumber: "42"}.TicketID())
	assert.Equal(t, "ABC", TicketContext{IssuePrefix: "abc"}.TicketID())
	assert.True(t, TicketContext{}.IsZero())

	ctx := TicketContext{IssuePrefix: "ABC", IssueNumber: "1"}.WithType(" feature ")
	assert.Equal(t, "feature", ctx.TicketType)
	assert.False(t, ctx.IsZero())
}

func TestEnabledPatterns(t *testing.T) {
	defs := []PatternDef{
		{Pattern: `a(\d+)`, Enabled: true},
		{Pattern: `b(\d+)`, Enabled: false},
		{Pattern: "", Enabled: true},
		{Pattern: `c(\d+)`, Enabled: true},
	}
	assert.Equal(t, []string{`a(\d+)`, `c(\d+)`}, EnabledPatterns(defs))
	assert.Nil(t, EnabledPatterns(nil))
}

func TestEnvironmentURLs(t *testing.T) {
	envs := EnvironmentURLs{"mobile": "m.example.com", "bo": " ", "desktop": "example.com"}
	assert.Equal(t, []string{"bo", "desktop", "mobile"}, envs.Keys())
	assert.Equal(t, []string{"desktop", "mobile"}, envs.Configured())
}
