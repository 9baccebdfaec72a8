// Test Type: Unit Test
// Description: Tests for the structural sequence rules

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

func seqOf(t *testing.T, tokens ...string) sequence.Sequence {
	t.Helper()
	seq, err := sequence.FromTokens(catalog.Default(), tokens)
	require.NoError(t, err)
	return seq
}

func failedIDs(r Report) []RuleID {
	var ids []RuleID
	for _, f := range r.Failures() {
		ids = append(ids, f.Rule.ID)
	}
	return ids
}

func TestRulesMetadata(t *testing.T) {
	ids := make([]RuleID, 0)
	for _, r := range Rules() {
		ids = append(ids, r.ID)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Description)
	}
	assert.Equal(t, []RuleID{
		BaseURLRequired, IssuePrefixRequired, TicketNumberRequired, NoAdjacentSeparators, NoLeadingSymbols,
	}, ids)

	r, ok := Lookup(NoLeadingSymbols)
	require.True(t, ok)
	assert.Equal(t, "No leading symbols", r.Name)
	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestWellFormedSequencesPassAllRules(t *testing.T) {
	sequences := [][]string{
		{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
		{"baseUrl", "/", "issuePrefix", "-", "[0-9]+"},
		{"ticketType", "/", "issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
		{"issuePrefix", "[0-9]+", "baseUrl", "[a-zA-Z0-9]+", "[0-9]+"},
		{"baseUrl", "issuePrefix", "[0-9]+"},
	}

	for _, tokens := range sequences {
		report := Validate(seqOf(t, tokens...), catalog.Default())
		assert.Len(t, report, 5)
		assert.True(t, report.SaveEligible(), "tokens %v: %v", tokens, report.Failures())
		for id, res := range report {
			assert.True(t, res.Valid, "%s", id)
			assert.Empty(t, res.Message, "%s", id)
		}
	}
}

func TestRuleScenarios(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		failed []RuleID
	}{
		{
			name:   "leading separator",
			tokens: []string{"-", "baseUrl"},
			failed: []RuleID{IssuePrefixRequired, TicketNumberRequired, NoLeadingSymbols},
		},
		{
			name:   "adjacent separators",
			tokens: []string{"-", ".", "issuePrefix", "baseUrl"},
			failed: []RuleID{TicketNumberRequired, NoAdjacentSeparators, NoLeadingSymbols},
		},
		{
			name:   "leading placeholder",
			tokens: []string{"[0-9]+", "issuePrefix", "baseUrl"},
			failed: []RuleID{NoLeadingSymbols},
		},
		{
			name:   "alphanumeric is not a ticket number",
			tokens: []string{"issuePrefix", "[a-zA-Z0-9]+", "baseUrl"},
			failed: []RuleID{TicketNumberRequired},
		},
		{
			name:   "missing base url",
			tokens: []string{"issuePrefix", "[0-9]+"},
			failed: []RuleID{BaseURLRequired},
		},
		{
			name:   "empty sequence",
			tokens: nil,
			failed: []RuleID{BaseURLRequired, IssuePrefixRequired, TicketNumberRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(seqOf(t, tt.tokens...), catalog.Default())
			assert.False(t, report.SaveEligible())
			assert.Equal(t, tt.failed, failedIDs(report))
			for _, f := range report.Failures() {
				assert.NotEmpty(t, f.Message)
			}
		})
	}
}

func TestFailureMessages(t *testing.T) {
	report := Validate(seqOf(t, "-", ".", "issuePrefix", "baseUrl"), catalog.Default())
	assert.Equal(t, `Separators "-" and "." at positions 1 and 2 are adjacent.`, report[NoAdjacentSeparators].Message)
	assert.Equal(t, `The sequence cannot start with the separator "-".`, report[NoLeadingSymbols].Message)
	assert.Equal(t, Result{Valid: true}, report[BaseURLRequired])
}

func TestDuplicatePermanentComponents(t *testing.T) {
	cat := catalog.Default()
	base, err := cat.Get(catalog.IDBaseURL)
	require.NoError(t, err)

	// sequences built by hand can bypass the sequence package checks
	seq := append(seqOf(t, "issuePrefix", "-", "[0-9]+", ".", "baseUrl"), types.Component{Entry: base})
	report := Validate(seq, cat)

	assert.False(t, report[BaseURLRequired].Valid)
	assert.Contains(t, report[BaseURLRequired].Message, "found 2")
	assert.True(t, report[IssuePrefixRequired].Valid)
}

func TestValidateResolvesThroughCatalog(t *testing.T) {
	cat := catalog.Default()

	// a stale entry with the wrong kind is corrected by the catalog lookup
	stale := &types.Entry{ID: catalog.IDIssuePrefix, Kind: types.KindSeparator, Literal: "?"}
	seq := append(sequence.Sequence{{Entry: stale}}, seqOf(t, "-", "[0-9]+", ".", "baseUrl")...)

	report := Validate(seq, cat)
	assert.True(t, report.SaveEligible(), "%v", report.Failures())
}

func TestValidateKeepsUnknownComponents(t *testing.T) {
	custom := &types.Entry{ID: "separator-plus", Kind: types.KindSeparator, Literal: "+"}
	seq := append(seqOf(t, "issuePrefix", "-"), types.Component{Entry: custom, Instance: "x"})
	seq = append(seq, seqOf(t, "[0-9]+", "baseUrl")...)

	report := Validate(seq, catalog.Default())
	assert.False(t, report[NoAdjacentSeparators].Valid)
}

func TestReportIDs(t *testing.T) {
	report := Report{NoLeadingSymbols: {Valid: true}, BaseURLRequired: {Valid: true}}
	assert.Equal(t, []RuleID{BaseURLRequired, NoLeadingSymbols}, report.IDs())
	assert.False(t, report.SaveEligible(), "a partial report is never save-eligible")
}

func TestValidateTokens(t *testing.T) {
	report, err := ValidateTokens([]string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"}, catalog.Default())
	require.NoError(t, err)
	assert.True(t, report.SaveEligible())

	_, err = ValidateTokens([]string{"issuePrefix", "?"}, catalog.Default())
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownComponent))
}
