package types

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

var ticketIDPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)-([0-9]+)$`)

// TicketContext describes one concrete ticket
type TicketContext struct {
	IssuePrefix string `json:"issuePrefix" yaml:"issuePrefix"`
	IssueNumber string `json:"issueNumber" yaml:"issueNumber"`
	TicketType  string `json:"ticketType,omitempty" yaml:"ticketType,omitempty"`
}

// ParseTicketID splits an identifier such as "PROJ-123" into its prefix and
// number. The prefix is upper-cased.
func ParseTicketID(id string) (TicketContext, error) {
	trimmed := strings.TrimSpace(id)
	m := ticketIDPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return TicketContext{}, errors.Newf(errors.ErrInvalidTicket,
			"ticket id %q must look like PREFIX-123", id).
			WithDetail("ticket", id)
	}
	return TicketContext{
		IssuePrefix: strings.ToUpper(m[1]),
		IssueNumber: m[2],
	}, nil
}

// WithType returns a copy of the context carrying the given ticket type
func (t TicketContext) WithType(ticketType string) TicketContext {
	t.TicketType = strings.TrimSpace(ticketType)
	return t
}

// TicketID re-forms the "PREFIX-number" identifier. Missing parts are left
// out, so a context without a prefix yields the bare number.
func (t TicketContext) TicketID() string {
	switch {
	case t.IssuePrefix != "" && t.IssueNumber != "":
		return strings.ToUpper(t.IssuePrefix) + "-" + t.IssueNumber
	case t.IssueNumber != "":
		return t.IssueNumber
	default:
		return strings.ToUpper(t.IssuePrefix)
	}
}

// IsZero reports whether the context carries no ticket data at all
func (t TicketContext) IsZero() bool {
	return t.IssuePrefix == "" && t.IssueNumber == "" && t.TicketType == ""
}
