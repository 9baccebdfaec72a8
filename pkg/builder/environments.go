package builder

import (
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// BuiltURL is the outcome of building one environment. URL is always set,
// even when Valid is false.
type BuiltURL struct {
	URL     string `json:"url" yaml:"url"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Problem string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// Results maps environment keys to their built URLs
type Results map[string]BuiltURL

// URLs returns the plain URL strings of every result
func (r Results) URLs() map[string]string {
	out := make(map[string]string, len(r))
	for env, res := range r {
		out[env] = res.URL
	}
	return out
}

// Invalid returns the sorted keys of environments whose URL is malformed
func (r Results) Invalid() []string {
	var keys []string
	for _, env := range types.EnvironmentURLs(r.URLs()).Keys() {
		if !r[env].Valid {
			keys = append(keys, env)
		}
	}
	return keys
}

// BuildAll builds seq for every environment that has a base URL
func BuildAll(seq sequence.Sequence, envs types.EnvironmentURLs, ctx types.TicketContext) Results {
	logger := logging.GetLogger("builder")

	results := make(Results)
	for _, env := range envs.Configured() {
		built := Build(seq, envs[env], ctx)
		res := BuiltURL{URL: built, Valid: true}
		if problem := urlProblem(built); problem != "" {
			res.Valid = false
			res.Problem = problem
			logger.Debug().Str("env", env).Str("url", built).Str("problem", problem).Msg("built URL is malformed")
		}
		results[env] = res
	}

	logger.Debug().Int("environments", len(results)).Str("ticket", ctx.TicketID()).Msg("URLs built")
	return results
}
