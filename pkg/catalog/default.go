package catalog

import "github.com/arthur-debert/ticketlink/pkg/types"

var defaultEntries = []types.Entry{
	{
		ID:          IDTicketType,
		Kind:        types.KindDynamicField,
		Field:       types.FieldTicketType,
		Token:       TokenTicketType,
		Label:       "Ticket Type",
		Description: "Type of the ticket, e.g. feature or bugfix",
	},
	{
		ID:          IDIssuePrefix,
		Kind:        types.KindDynamicField,
		Field:       types.FieldIssuePrefix,
		Token:       TokenIssuePrefix,
		Label:       "Issue Prefix",
		Description: "Project key of the ticket, e.g. PROJ",
		Permanent:   true,
	},
	{
		ID:          IDBaseURL,
		Kind:        types.KindDynamicField,
		Field:       types.FieldBaseURL,
		Token:       TokenBaseURL,
		Label:       "Base URL",
		Description: "Base URL of the target environment",
		Permanent:   true,
	},
	{
		ID:          IDSeparatorDash,
		Kind:        types.KindSeparator,
		Literal:     "-",
		Token:       TokenDash,
		Label:       "Dash",
		Description: "Literal '-'",
	},
	{
		ID:          IDSeparatorDot,
		Kind:        types.KindSeparator,
		Literal:     ".",
		Token:       TokenDot,
		Label:       "Dot",
		Description: "Literal '.'",
	},
	{
		ID:          IDSeparatorUnderscore,
		Kind:        types.KindSeparator,
		Literal:     "_",
		Token:       TokenUnderscore,
		Label:       "Underscore",
		Description: "Literal '_'",
	},
	{
		ID:          IDSeparatorSlash,
		Kind:        types.KindSeparator,
		Literal:     "/",
		Token:       TokenSlash,
		Label:       "Slash",
		Description: "Literal '/'",
	},
	{
		ID:          IDRegexNumeric,
		Kind:        types.KindRegexPlaceholder,
		Literal:     types.NumericPattern,
		Token:       TokenNumeric,
		Label:       "Ticket Number",
		Description: "Numeric part of the ticket id",
	},
	{
		ID:          IDRegexAlphanumeric,
		Kind:        types.KindRegexPlaceholder,
		Literal:     types.AlphanumericPattern,
		Token:       TokenAlphanumeric,
		Label:       "Alphanumeric",
		Description: "Ticket id without its prefix",
	},
}

var defaultCatalog = MustNew(defaultEntries...)

// Default returns the built-in catalog. It is shared: Entries hands out
// copies, but the pointers from Get and ByToken are the catalog's own and
// must not be modified.
func Default() *Catalog {
	return defaultCatalog
}
