package builder

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Values used when the ticket context does not provide a field
const (
	PlaceholderTicketType = "type"
	PlaceholderPrefix     = "prefix"
	SampleNumber          = "12345"
	SampleAlphanumeric    = "abc123"
)

// PreviewBaseURL is the base URL BuildForPreview builds against
const PreviewBaseURL = "example.com"

const httpsScheme = "https://"

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// Build compiles seq into a single absolute URL for one environment.
//
// Dynamic fields are filled from ctx or fall back to placeholders, separators
// contribute their literal and regex placeholders contribute the ticket
// number or a sample. The base URL keeps its https:// scheme only when it is
// the first thing written, so the result carries exactly one scheme at its
// start. Build is pure: equal inputs always give equal output.
func Build(seq sequence.Sequence, baseURL string, ctx types.TicketContext) string {
	var b strings.Builder
	for _, c := range seq {
		b.WriteString(contribution(c, baseURL, ctx, b.Len() == 0))
	}

	out := b.String()
	if !HasScheme(out) {
		out = httpsScheme + out
	}
	return out
}

func contribution(c types.Component, baseURL string, ctx types.TicketContext, first bool) string {
	switch c.Kind() {
	case types.KindDynamicField:
		switch c.Field() {
		case types.FieldTicketType:
			return valueOr(ctx.TicketType, PlaceholderTicketType)
		case types.FieldIssuePrefix:
			return valueOr(ctx.IssuePrefix, PlaceholderPrefix)
		case types.FieldBaseURL:
			normalized := NormalizeBaseURL(baseURL)
			if !first {
				return StripScheme(normalized)
			}
			return normalized
		}
	case types.KindSeparator:
		return c.Literal()
	case types.KindRegexPlaceholder:
		switch c.Literal() {
		case types.NumericPattern:
			return numberOr(ctx, SampleNumber)
		case types.AlphanumericPattern:
			return strippedTicketID(ctx)
		}
	}
	return ""
}

func valueOr(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholder
	}
	return strings.ToLower(value)
}

func numberOr(ctx types.TicketContext, sample string) string {
	if n := strings.TrimSpace(ctx.IssueNumber); n != "" {
		return n
	}
	return sample
}

// strippedTicketID is the ticket id without its "PREFIX-" part
func strippedTicketID(ctx types.TicketContext) string {
	if strings.TrimSpace(ctx.IssueNumber) == "" {
		return SampleAlphanumeric
	}
	id := strings.ToLower(ctx.TicketID())
	prefix := strings.ToLower(strings.TrimSpace(ctx.IssuePrefix))
	if prefix != "" {
		id = strings.TrimPrefix(id, prefix+"-")
	}
	return id
}

// NormalizeBaseURL trims blanks, replaces any scheme with https:// and drops
// trailing slashes. A blank base URL normalizes to "".
func NormalizeBaseURL(raw string) string {
	rest := strings.TrimRight(StripScheme(strings.TrimSpace(raw)), "/")
	if rest == "" {
		return ""
	}
	return httpsScheme + rest
}

// StripScheme removes a leading "scheme://"
func StripScheme(s string) string {
	if loc := schemePattern.FindStringIndex(s); loc != nil {
		return s[loc[1]:]
	}
	return s
}

// HasScheme reports whether s starts with "scheme://"
func HasScheme(s string) bool {
	return schemePattern.MatchString(s)
}

// BuildForPreview builds the default sequence against PreviewBaseURL for the
// given prefix and number.
func BuildForPreview(prefix, number string) string {
	seq, err := sequence.Default(catalog.Default(), sequence.WithTokenSource(&sequence.CounterSource{}))
	if err != nil {
		// the built-in catalog always resolves the default tokens
		seq = nil
	}
	return Build(seq, PreviewBaseURL, types.TicketContext{IssuePrefix: prefix, IssueNumber: number})
}
