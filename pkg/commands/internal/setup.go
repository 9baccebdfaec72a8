package internal

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
)

// Defaults fills in the built-in configuration and catalog when a command is
// invoked without them. Only embedded defaults are used so that library
// callers never pick up the user's files by accident.
func Defaults(cfg *config.Config, cat *catalog.Catalog) (*config.Config, *catalog.Catalog, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg == nil {
		loaded, err := config.Load(config.LoadOptions{NoUserConfig: true, NoEnv: true})
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	return cfg, cat, nil
}

// Sequence resolves the sequence a command works on: explicit tokens win over
// the configured sequence.
func Sequence(cfg *config.Config, cat *catalog.Catalog, tokens []string, opts ...sequence.Option) (sequence.Sequence, error) {
	if len(tokens) > 0 {
		return sequence.FromTokens(cat, tokens, opts...)
	}
	seq, err := cfg.ResolveSequence(cat, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), "configured sequence is invalid").
			WithDetail("sequence", cfg.Sequence)
	}
	return seq, nil
}
