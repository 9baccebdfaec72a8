// Package output renders command results for the terminal.
//
// Each command result has an embedded text/template under templates/. The
// templates emit [tag]..[/tag] markup from pkg/style which is expanded into
// lipgloss styles, or stripped when colour is disabled:
//
//	[title]Sequence[/title] {{tokens .Tokens}}
//	{{indicator .Valid}} {{.Name}}
//
// Template helpers:
//   - indicator: ✓ or ✗ for a validity flag
//   - tokens:    a token list as code spans
//   - styled:    text styled after a component kind
//   - envs:      sorted environment keys of built URLs
//
// Encode writes the same results as JSON or YAML for scripting.
package output
