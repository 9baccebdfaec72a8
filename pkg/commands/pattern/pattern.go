package pattern

import (
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/matcher"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// CheckPatternOptions defines the options for the CheckPattern command.
type CheckPatternOptions struct {
	// Pattern is the regex being edited.
	Pattern string

	// Samples are URLs to try the pattern against once it compiles.
	Samples []string

	// Prefixes complete digits-only captures, as during extraction.
	Prefixes []string
}

// SampleMatch is the outcome of one sample URL
type SampleMatch struct {
	URL      string `json:"url" yaml:"url"`
	Found    bool   `json:"found" yaml:"found"`
	TicketID string `json:"ticketId,omitempty" yaml:"ticketId,omitempty"`
}

// CheckPatternResult reports whether a pattern is usable
type CheckPatternResult struct {
	Pattern string        `json:"pattern" yaml:"pattern"`
	Valid   bool          `json:"valid" yaml:"valid"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Samples []SampleMatch `json:"samples,omitempty" yaml:"samples,omitempty"`
}

// CheckPattern compile-checks a pattern. An invalid pattern is reported in
// the result rather than as an error; samples are only tried when the
// pattern is valid. Samples run without the prefix fallback so that only
// the pattern itself can produce a match.
func CheckPattern(opts CheckPatternOptions) (*CheckPatternResult, error) {
	log := logging.GetLogger("commands.pattern")
	log.Debug().Str("command", "CheckPattern").Str("pattern", opts.Pattern).Msg("Executing command")

	result := &CheckPatternResult{Pattern: opts.Pattern, Valid: true}
	if err := matcher.CheckPattern(opts.Pattern); err != nil {
		if !errors.IsErrorCode(err, errors.ErrInvalidPattern) {
			return nil, err
		}
		result.Valid = false
		result.Error = err.Error()
		log.Info().Str("command", "CheckPattern").Bool("valid", false).Msg("Command finished")
		return result, nil
	}

	m := matcher.New([]types.PatternDef{{Pattern: opts.Pattern, Enabled: true}}, opts.Prefixes)
	for _, url := range opts.Samples {
		sample := SampleMatch{URL: url}
		if res, ok := m.Explain(url); ok && res.Source == matcher.SourcePattern {
			sample.Found = true
			sample.TicketID = res.TicketID
		}
		result.Samples = append(result.Samples, sample)
	}

	log.Info().Str("command", "CheckPattern").Bool("valid", true).Int("samples", len(result.Samples)).Msg("Command finished")
	return result, nil
}
