package preview

import (
	"strings"

	"github.com/arthur-debert/ticketlink/pkg/builder"
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

const previewKey = "preview"

// PreviewOptions defines the options for the Preview command.
type PreviewOptions struct {
	Config  *config.Config
	Catalog *catalog.Catalog

	// Prefix defaults to the first configured prefix. When neither is set
	// the builder placeholder is shown.
	Prefix string

	// Number defaults to the builder sample number.
	Number string

	// Tokens overrides the configured sequence.
	Tokens []string
}

// PreviewResult shows what a sequence produces before it is used
type PreviewResult struct {
	Tokens       []string            `json:"tokens" yaml:"tokens"`
	Ticket       types.TicketContext `json:"ticket" yaml:"ticket"`
	Sample       builder.BuiltURL    `json:"sample" yaml:"sample"`
	Environments builder.Results     `json:"environments" yaml:"environments"`
}

// Preview builds the sequence against the preview host and every configured
// environment. Rules are not enforced so that work-in-progress sequences can
// be inspected.
func Preview(opts PreviewOptions) (*PreviewResult, error) {
	log := logging.GetLogger("commands.preview")
	log.Debug().Str("command", "Preview").Str("prefix", opts.Prefix).Str("number", opts.Number).Msg("Executing command")

	cfg, cat, err := internal.Defaults(opts.Config, opts.Catalog)
	if err != nil {
		return nil, err
	}

	seq, err := internal.Sequence(cfg, cat, opts.Tokens)
	if err != nil {
		return nil, err
	}

	ticket := types.TicketContext{
		IssuePrefix: strings.ToUpper(strings.TrimSpace(opts.Prefix)),
		IssueNumber: strings.TrimSpace(opts.Number),
	}
	if ticket.IssuePrefix == "" {
		for _, p := range cfg.Prefixes {
			if p = strings.TrimSpace(p); p != "" {
				ticket.IssuePrefix = strings.ToUpper(p)
				break
			}
		}
	}
	if ticket.IssueNumber == "" {
		ticket.IssueNumber = builder.SampleNumber
	}

	sample := builder.BuildAll(seq, types.EnvironmentURLs{previewKey: builder.PreviewBaseURL}, ticket)
	result := &PreviewResult{
		Tokens:       seq.Tokens(),
		Ticket:       ticket,
		Sample:       sample[previewKey],
		Environments: builder.BuildAll(seq, cfg.Environments, ticket),
	}

	log.Info().Str("command", "Preview").Int("environments", len(result.Environments)).Msg("Command finished")
	return result, nil
}
