// Package testutil provides utilities for testing ticketlink components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories, color and TICKETLINK_*
//     variables of the machine running the tests
//   - CreateFile / ReadFile: small file helpers that fail the test on error
//
// Usage guidelines:
//   - Every test that loads configuration starts with NewTestEnvironment
//   - All test data should be defined inline, not in external files
package testutil
