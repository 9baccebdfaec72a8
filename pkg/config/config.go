package config

import (
	"time"

	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/render"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
)

// Config is the effective ticketlink configuration
type Config struct {
	Prefixes     []string              `koanf:"prefixes" toml:"prefixes" yaml:"prefixes" json:"prefixes"`
	Sequence     []string              `koanf:"sequence" toml:"sequence" yaml:"sequence" json:"sequence"`
	Environments types.EnvironmentURLs `koanf:"environments" toml:"environments" yaml:"environments" json:"environments"`
	Patterns     []types.PatternDef    `koanf:"patterns" toml:"patterns" yaml:"patterns" json:"patterns"`
	Matcher      MatcherConfig         `koanf:"matcher" toml:"matcher" yaml:"matcher" json:"matcher"`
	Output       OutputConfig          `koanf:"output" toml:"output" yaml:"output" json:"output"`
	Layout       render.Layout         `koanf:"layout" toml:"layout" yaml:"layout" json:"layout"`

	// Source lists the files that were merged into this configuration
	Source []string `koanf:"-" toml:"-" yaml:"-" json:"-"`
}

// MatcherConfig tunes ticket id extraction
type MatcherConfig struct {
	TimeoutMS int `koanf:"timeout_ms" toml:"timeout_ms" yaml:"timeout_ms" json:"timeout_ms"`
}

// OutputConfig controls how link blocks are printed
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format" yaml:"format" json:"format"`
	Glamour bool   `koanf:"glamour" toml:"glamour" yaml:"glamour" json:"glamour"`
	Style   string `koanf:"style" toml:"style" yaml:"style" json:"style"`
}

// ResolveSequence turns the configured token list into a sequence. An empty
// list falls back to the default sequence.
func (c *Config) ResolveSequence(cat *catalog.Catalog, opts ...sequence.Option) (sequence.Sequence, error) {
	if len(c.Sequence) == 0 {
		return sequence.Default(cat, opts...)
	}
	return sequence.FromTokens(cat, c.Sequence, opts...)
}

// MatchTimeout returns the per-pattern timeout, 0 meaning the matcher default
func (c *Config) MatchTimeout() time.Duration {
	if c.Matcher.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.Matcher.TimeoutMS) * time.Millisecond
}

// Renderer returns a link block renderer for the configured layout, or the
// default layout when none is configured
func (c *Config) Renderer() (*render.Renderer, error) {
	if len(c.Layout.Sections) == 0 {
		return render.New(render.DefaultLayout())
	}
	return render.New(c.Layout)
}
