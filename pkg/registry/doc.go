// Package registry provides a small generic registry that keeps items by
// name and preserves registration order. The component catalog indexes its
// entries with it, once by id and once by serialization token.
package registry
