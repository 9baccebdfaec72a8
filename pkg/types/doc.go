// Package types defines the plain data shared by the ticketlink engine:
// catalog entries and the components that reference them, ticket contexts,
// configured URL patterns and environment base URLs.
//
// A Component is a tagged variant. Its kind and field are always read from
// the catalog entry it points at; the instance token only keeps repeated
// separators and placeholders apart and is never parsed.
package types
