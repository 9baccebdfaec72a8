// Package catalog holds the static set of building blocks a URL sequence is
// made of: the dynamic fields (ticket type, issue prefix, base URL), the
// separators and the regex placeholders.
//
// Entries are looked up by id or by their reserved serialization token.
// Sequences reference entries by pointer, so a catalog is never modified
// after construction.
package catalog
