// Package rules validates URL-construction sequences against a fixed set of
// structural rules.
//
// Every rule is evaluated on every pass and rules never depend on each
// other. A failing rule explains itself in its Result message; a sequence is
// save-eligible only when all rules pass. Rule failures are data, not
// errors: a sequence can be edited freely while it is invalid.
//
// The rules are:
//
//   - base-url-required: exactly one base URL component
//   - issue-prefix-required: exactly one issue prefix component
//   - ticket-number-required: at least one [0-9]+ placeholder
//   - no-adjacent-separators: two separators never touch
//   - no-leading-symbols: the first component is a dynamic field
package rules
