package types

import (
	"sort"
	"strings"
)

// EnvironmentURLs maps a caller-defined environment key (e.g. "bo",
// "mobile", "desktop") to that environment's base URL.
type EnvironmentURLs map[string]string

// Keys returns the environment keys in sorted order
func (e EnvironmentURLs) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Configured returns the sorted keys whose base URL is not blank
func (e EnvironmentURLs) Configured() []string {
	var keys []string
	for _, k := range e.Keys() {
		if strings.TrimSpace(e[k]) != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
