package matcher

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// DefaultMatchTimeout bounds a single regex evaluation
const DefaultMatchTimeout = 100 * time.Millisecond

// Source tells which stage produced a ticket id
type Source string

const (
	SourcePattern Source = "pattern"
	SourcePrefix  Source = "prefix"
)

// Result describes a successful extraction
type Result struct {
	TicketID string `json:"ticketId" yaml:"ticketId"`
	Source   Source `json:"source" yaml:"source"`
	// Pattern is the regex that matched; empty for prefix matches
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// Candidate is the raw text before normalization
	Candidate string `json:"candidate" yaml:"candidate"`
}

// InvalidPattern is an enabled pattern that failed to compile
type InvalidPattern struct {
	Pattern string
	Err     error
}

type compiled struct {
	source string
	re     *regexp2.Regexp
}

// Matcher extracts ticket ids from URLs using an ordered pattern list and a
// set of known issue prefixes. A Matcher is read-only after New and safe for
// concurrent use.
type Matcher struct {
	patterns []compiled
	invalid  []InvalidPattern
	prefixes []string
	fallback *regexp2.Regexp
	timeout  time.Duration
	logger   zerolog.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithTimeout sets the per-evaluation regex timeout
func WithTimeout(d time.Duration) Option {
	return func(m *Matcher) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// New compiles the enabled patterns once. Patterns that do not compile are
// recorded and never match. The ticket id is the first group by opening
// paren, whether or not it is named.
func New(patterns []types.PatternDef, prefixes []string, opts ...Option) *Matcher {
	m := &Matcher{
		timeout: DefaultMatchTimeout,
		logger:  logging.GetLogger("matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			m.prefixes = append(m.prefixes, p)
		}
	}

	for _, def := range patterns {
		if !def.Enabled || def.Pattern == "" {
			continue
		}
		re, err := compile(unnameGroups(def.Pattern), regexp2.ECMAScript, m.timeout)
		if err != nil {
			m.logger.Debug().Str("pattern", def.Pattern).Err(err).Msg("skipping invalid pattern")
			m.invalid = append(m.invalid, InvalidPattern{Pattern: def.Pattern, Err: err})
			continue
		}
		m.patterns = append(m.patterns, compiled{source: def.Pattern, re: re})
	}

	if len(m.prefixes) > 0 {
		escaped := make([]string, len(m.prefixes))
		for i, p := range m.prefixes {
			escaped[i] = regexp2.Escape(p)
		}
		expr := `(?:` + strings.Join(escaped, "|") + `)-\d+`
		re, err := compile(expr, regexp2.ECMAScript|regexp2.IgnoreCase, m.timeout)
		if err != nil {
			m.logger.Debug().Str("pattern", expr).Err(err).Msg("prefix fallback disabled")
		} else {
			m.fallback = re
		}
	}

	return m
}

func compile(expr string, opts regexp2.RegexOptions, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = timeout
	return re, nil
}

// Invalid lists the enabled patterns that failed to compile
func (m *Matcher) Invalid() []InvalidPattern {
	out := make([]InvalidPattern, len(m.invalid))
	copy(out, m.invalid)
	return out
}

// Prefixes returns the non-empty configured prefixes, in order
func (m *Matcher) Prefixes() []string {
	out := make([]string, len(m.prefixes))
	copy(out, m.prefixes)
	return out
}

// Extract returns the normalized ticket id found in url
func (m *Matcher) Extract(url string) (string, bool) {
	res, ok := m.Explain(url)
	if !ok {
		return "", false
	}
	return res.TicketID, true
}

// Explain is Extract with the details of how the id was found.
// Configured patterns always take precedence over the prefix fallback.
func (m *Matcher) Explain(url string) (Result, bool) {
	for _, p := range m.patterns {
		candidate, ok := m.firstGroup(p, url)
		if !ok {
			continue
		}
		res := Result{
			TicketID:  m.normalize(candidate),
			Source:    SourcePattern,
			Pattern:   p.source,
			Candidate: candidate,
		}
		m.logger.Debug().Str("url", url).Str("pattern", p.source).Str("ticket", res.TicketID).Msg("pattern matched")
		return res, true
	}

	if m.fallback != nil {
		match, err := m.fallback.FindStringMatch(url)
		if err != nil {
			m.logger.Debug().Err(err).Str("url", url).Msg("prefix fallback failed")
		} else if match != nil {
			res := Result{
				TicketID:  strings.ToUpper(match.String()),
				Source:    SourcePrefix,
				Candidate: match.String(),
			}
			m.logger.Debug().Str("url", url).Str("ticket", res.TicketID).Msg("prefix matched")
			return res, true
		}
	}

	m.logger.Trace().Str("url", url).Msg("no ticket id found")
	return Result{}, false
}

func (m *Matcher) firstGroup(p compiled, url string) (string, bool) {
	match, err := p.re.FindStringMatch(url)
	if err != nil {
		// timeouts land here
		m.logger.Debug().Err(err).Str("pattern", p.source).Msg("pattern evaluation failed")
		return "", false
	}
	if match == nil {
		return "", false
	}
	group := match.GroupByNumber(1)
	if group == nil || group.String() == "" {
		return "", false
	}
	return group.String(), true
}

func (m *Matcher) normalize(candidate string) string {
	if isDigits(candidate) && len(m.prefixes) > 0 {
		candidate = m.prefixes[0] + "-" + candidate
	}
	return strings.ToUpper(candidate)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ExtractTicketID runs a one-off Matcher over url. Disabled and malformed
// patterns never match; the result is empty and false when nothing does.
func ExtractTicketID(url string, patterns []types.PatternDef, prefixes []string) (string, bool) {
	return New(patterns, prefixes).Extract(url)
}

// CheckPattern reports whether src compiles in the pattern dialect. It is
// meant for validating a pattern while it is being edited.
func CheckPattern(src string) error {
	if strings.TrimSpace(src) == "" {
		return errors.New(errors.ErrInvalidPattern, "pattern cannot be empty")
	}
	re, err := regexp2.Compile(src, regexp2.ECMAScript)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", src).
			WithDetail("pattern", src)
	}
	if !hasCaptureGroup(re) {
		return errors.Newf(errors.ErrInvalidPattern, "pattern %q has no capture group for the ticket id", src).
			WithDetail("pattern", src)
	}
	return nil
}

func hasCaptureGroup(re *regexp2.Regexp) bool {
	for _, n := range re.GetGroupNumbers() {
		if n > 0 {
			return true
		}
	}
	return false
}
