// Package sequence implements URL-construction sequences: ordered lists of
// catalog components that are serialized as flat token lists.
//
// All operations are pure. Move, Insert and Remove return a new Sequence and
// never touch their input, so callers can re-validate after each mutation
// and keep the previous state around.
package sequence
