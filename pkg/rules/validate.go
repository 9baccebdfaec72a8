package rules

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Report maps every rule id to its result
type Report map[RuleID]Result

// SaveEligible reports whether every rule passed
func (r Report) SaveEligible() bool {
	for _, def := range definitions {
		if res, ok := r[def.ID]; !ok || !res.Valid {
			return false
		}
	}
	return true
}

// IDs returns the rule ids of the report in definition order
func (r Report) IDs() []RuleID {
	ids := make([]RuleID, 0, len(r))
	for _, def := range definitions {
		if _, ok := r[def.ID]; ok {
			ids = append(ids, def.ID)
		}
	}
	return ids
}

// Failures returns the failed rules in definition order
func (r Report) Failures() []Failure {
	var failures []Failure
	for _, def := range definitions {
		if res, ok := r[def.ID]; ok && !res.Valid {
			failures = append(failures, Failure{Rule: def, Message: res.Message})
		}
	}
	return failures
}

// Validate evaluates all rules against seq. Components are first re-resolved
// through cat by their base id so that rules always see catalog data.
// Components the catalog does not know keep their own entry.
func Validate(seq sequence.Sequence, cat *catalog.Catalog) Report {
	logger := logging.GetLogger("rules")
	components := resolve(seq, cat)

	report := make(Report, len(definitions))
	for _, def := range definitions {
		report[def.ID] = def.Validate(components)
	}

	logger.Debug().
		Strs("tokens", seq.Tokens()).
		Bool("saveEligible", report.SaveEligible()).
		Int("failures", len(report.Failures())).
		Msg("sequence validated")
	return report
}

// ValidateTokens resolves a persisted token list and validates it. Tokens
// that cannot form a sequence at all are an error.
func ValidateTokens(tokens []string, cat *catalog.Catalog) (Report, error) {
	seq, err := sequence.FromTokens(cat, tokens)
	if err != nil {
		return nil, err
	}
	return Validate(seq, cat), nil
}

func resolve(seq sequence.Sequence, cat *catalog.Catalog) []types.Component {
	components := make([]types.Component, 0, len(seq))
	for _, c := range seq {
		if cat != nil {
			if entry, err := cat.Get(c.BaseID()); err == nil {
				components = append(components, types.Component{Entry: entry, Instance: c.Instance})
				continue
			}
		}
		if c.Entry != nil {
			components = append(components, c)
		}
	}
	return components
}
