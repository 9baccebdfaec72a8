package extract

import (
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/matcher"
)

// ExtractTicketOptions defines the options for the ExtractTicket command.
type ExtractTicketOptions struct {
	// Config supplies patterns, prefixes and the match timeout. Nil means
	// built-in defaults.
	Config *config.Config

	// URL is the page address to inspect.
	URL string

	// Prefixes replaces the configured prefixes when non-empty.
	Prefixes []string
}

// SkippedPattern is an enabled pattern that could not be compiled
type SkippedPattern struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Error   string `json:"error" yaml:"error"`
}

// ExtractResult is the outcome of ExtractTicket. Match is nil when no ticket
// was found.
type ExtractResult struct {
	URL      string           `json:"url" yaml:"url"`
	Found    bool             `json:"found" yaml:"found"`
	Match    *matcher.Result  `json:"match,omitempty" yaml:"match,omitempty"`
	Prefixes []string         `json:"prefixes" yaml:"prefixes"`
	Skipped  []SkippedPattern `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// ExtractTicket finds the ticket id in a URL. Not finding one is not an
// error; only a blank URL is.
func ExtractTicket(opts ExtractTicketOptions) (*ExtractResult, error) {
	log := logging.GetLogger("commands.extract")
	log.Debug().Str("command", "ExtractTicket").Str("url", opts.URL).Msg("Executing command")

	if opts.URL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a URL is required")
	}

	cfg, _, err := internal.Defaults(opts.Config, nil)
	if err != nil {
		return nil, err
	}

	prefixes := cfg.Prefixes
	if len(opts.Prefixes) > 0 {
		prefixes = opts.Prefixes
	}

	done := logging.LogOperationStart(log, "match patterns")
	m := matcher.New(cfg.Patterns, prefixes, matcher.WithTimeout(cfg.MatchTimeout()))

	result := &ExtractResult{URL: opts.URL, Prefixes: m.Prefixes()}
	for _, inv := range m.Invalid() {
		result.Skipped = append(result.Skipped, SkippedPattern{Pattern: inv.Pattern, Error: inv.Err.Error()})
	}

	if res, ok := m.Explain(opts.URL); ok {
		result.Found = true
		result.Match = &res
	}
	done()

	log.Info().Str("command", "ExtractTicket").Bool("found", result.Found).Msg("Command finished")
	return result, nil
}
