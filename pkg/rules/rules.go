package rules

import (
	"fmt"

	"github.com/arthur-debert/ticketlink/pkg/types"
)

const (
	BaseURLRequired      RuleID = "base-url-required"
	IssuePrefixRequired  RuleID = "issue-prefix-required"
	TicketNumberRequired RuleID = "ticket-number-required"
	NoAdjacentSeparators RuleID = "no-adjacent-separators"
	NoLeadingSymbols     RuleID = "no-leading-symbols"
)

var definitions = []Rule{
	{
		ID:          BaseURLRequired,
		Name:        "Base URL required",
		Description: "The sequence must contain the base URL component exactly once.",
		check:       exactlyOne(types.FieldBaseURL, "base URL"),
	},
	{
		ID:          IssuePrefixRequired,
		Name:        "Issue prefix required",
		Description: "The sequence must contain the issue prefix component.",
		check:       exactlyOne(types.FieldIssuePrefix, "issue prefix"),
	},
	{
		ID:          TicketNumberRequired,
		Name:        "Ticket number required",
		Description: "The sequence must contain a " + types.NumericPattern + " placeholder for the ticket number.",
		check:       checkTicketNumber,
	},
	{
		ID:          NoAdjacentSeparators,
		Name:        "No adjacent separators",
		Description: "Two separators may not follow each other directly.",
		check:       checkAdjacentSeparators,
	},
	{
		ID:          NoLeadingSymbols,
		Name:        "No leading symbols",
		Description: "The sequence may not start with a separator or a regex placeholder.",
		check:       checkLeadingSymbol,
	},
}

// Rules returns the rule set in definition order
func Rules() []Rule {
	out := make([]Rule, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the rule with the given id
func Lookup(id RuleID) (Rule, bool) {
	for _, r := range definitions {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

func exactlyOne(field types.Field, label string) func([]types.Component) Result {
	return func(components []types.Component) Result {
		n := 0
		for _, c := range components {
			if c.Is(field) {
				n++
			}
		}
		switch {
		case n == 0:
			return fail(fmt.Sprintf("The %s component is required.", label))
		case n > 1:
			return fail(fmt.Sprintf("The %s component must appear only once, found %d.", label, n))
		default:
			return pass()
		}
	}
}

func checkTicketNumber(components []types.Component) Result {
	for _, c := range components {
		if c.IsPlaceholder() && c.Literal() == types.NumericPattern {
			return pass()
		}
	}
	return fail("A ticket number placeholder (" + types.NumericPattern + ") is required.")
}

func checkAdjacentSeparators(components []types.Component) Result {
	for i := 1; i < len(components); i++ {
		prev, cur := components[i-1], components[i]
		if prev.IsSeparator() && cur.IsSeparator() {
			return fail(fmt.Sprintf("Separators %q and %q at positions %d and %d are adjacent.",
				prev.Literal(), cur.Literal(), i, i+1))
		}
	}
	return pass()
}

func checkLeadingSymbol(components []types.Component) Result {
	if len(components) == 0 {
		return pass()
	}
	first := components[0]
	switch {
	case first.IsSeparator():
		return fail(fmt.Sprintf("The sequence cannot start with the separator %q.", first.Literal()))
	case first.IsPlaceholder():
		return fail(fmt.Sprintf("The sequence cannot start with the placeholder %q.", first.Literal()))
	default:
		return pass()
	}
}
