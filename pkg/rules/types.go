package rules

import "github.com/arthur-debert/ticketlink/pkg/types"

// RuleID identifies a rule in a Report
type RuleID string

// Result is the outcome of one rule
type Result struct {
	Valid bool `json:"valid" yaml:"valid"`
	// Message explains a failure and is empty when Valid is true
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Rule is a named structural predicate over a sequence
type Rule struct {
	ID          RuleID
	Name        string
	Description string

	check func(components []types.Component) Result
}

// Validate runs the rule against already resolved components
func (r Rule) Validate(components []types.Component) Result {
	return r.check(components)
}

// Failure pairs a failed rule with its message
type Failure struct {
	Rule    Rule
	Message string
}

func pass() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Message: message}
}
