package validate

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/rules"
)

// ValidateSequenceOptions defines the options for the ValidateSequence command.
type ValidateSequenceOptions struct {
	Config  *config.Config
	Catalog *catalog.Catalog

	// Tokens is the sequence to check; empty means the configured one.
	Tokens []string
}

// RuleOutcome is one rule line of a validation report
type RuleOutcome struct {
	ID      rules.RuleID `json:"id" yaml:"id"`
	Name    string       `json:"name" yaml:"name"`
	Valid   bool         `json:"valid" yaml:"valid"`
	Message string       `json:"message,omitempty" yaml:"message,omitempty"`
}

// ValidateResult is a rule report in display order
type ValidateResult struct {
	Tokens       []string      `json:"tokens" yaml:"tokens"`
	SaveEligible bool          `json:"saveEligible" yaml:"saveEligible"`
	Rules        []RuleOutcome `json:"rules" yaml:"rules"`
}

// ValidateSequence runs every structural rule over a sequence. Rule failures
// are part of the result; only unresolvable tokens are errors.
func ValidateSequence(opts ValidateSequenceOptions) (*ValidateResult, error) {
	log := logging.GetLogger("commands.validate")
	log.Debug().Str("command", "ValidateSequence").Strs("tokens", opts.Tokens).Msg("Executing command")

	cfg, cat, err := internal.Defaults(opts.Config, opts.Catalog)
	if err != nil {
		return nil, err
	}

	seq, err := internal.Sequence(cfg, cat, opts.Tokens)
	if err != nil {
		return nil, err
	}

	result := NewResult(seq.Tokens(), rules.Validate(seq, cat))

	log.Info().Str("command", "ValidateSequence").Bool("saveEligible", result.SaveEligible).Msg("Command finished")
	return result, nil
}

// NewResult orders a report by rule definition
func NewResult(tokens []string, report rules.Report) *ValidateResult {
	result := &ValidateResult{
		Tokens:       tokens,
		SaveEligible: report.SaveEligible(),
	}
	for _, rule := range rules.Rules() {
		res, ok := report[rule.ID]
		if !ok {
			continue
		}
		result.Rules = append(result.Rules, RuleOutcome{
			ID:      rule.ID,
			Name:    rule.Name,
			Valid:   res.Valid,
			Message: res.Message,
		})
	}
	return result
}
