// Package matcher turns ticket URLs back into ticket ids.
//
// Patterns are user-authored regular expressions in ECMAScript syntax and
// are evaluated with github.com/dlclark/regexp2, each match bounded by a
// timeout. The first capture group of the first matching pattern is the
// candidate id, counted by opening paren as a browser would, so named groups
// are turned into plain ones before compiling. A bare number is completed with the first known prefix. When
// no pattern matches, the known prefixes are tried directly as
// PREFIX-digits, ignoring case. Results are always upper-cased.
package matcher
