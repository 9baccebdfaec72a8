package types

// PatternDef is one user-configured ticket URL pattern. The first capture
// group of a matching pattern is taken as the ticket id.
type PatternDef struct {
	Pattern string `koanf:"pattern" toml:"pattern" yaml:"pattern" json:"pattern"`
	Enabled bool   `koanf:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
}

// EnabledPatterns returns the sources of all enabled patterns, in order
func EnabledPatterns(defs []PatternDef) []string {
	var out []string
	for _, d := range defs {
		if d.Enabled && d.Pattern != "" {
			out = append(out, d.Pattern)
		}
	}
	return out
}
