package links

import (
	"github.com/arthur-debert/ticketlink/pkg/builder"
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/rules"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// GenerateLinksOptions defines the options for the GenerateLinks command.
type GenerateLinksOptions struct {
	// Config is the effective configuration. Nil means built-in defaults.
	Config *config.Config

	// Catalog defaults to the built-in catalog.
	Catalog *catalog.Catalog

	// TicketID is the ticket to link, e.g. PROJ-123.
	TicketID string

	// TicketType optionally fills the ticket-type component.
	TicketType string

	// Tokens overrides the configured sequence.
	Tokens []string
}

// LinksResult holds everything needed to print a link block.
type LinksResult struct {
	Ticket    types.TicketContext `json:"ticket" yaml:"ticket"`
	Tokens    []string            `json:"tokens" yaml:"tokens"`
	Report    rules.Report        `json:"report" yaml:"report"`
	URLs      builder.Results     `json:"urls" yaml:"urls"`
	Markdown  string              `json:"markdown" yaml:"markdown"`
	PlainText string              `json:"plainText" yaml:"plainText"`
}

// GenerateLinks validates the sequence, builds one URL per configured
// environment and renders both link blocks. When the sequence fails
// validation the partial result carries the report and an error is returned.
func GenerateLinks(opts GenerateLinksOptions) (*LinksResult, error) {
	log := logging.WithFields(map[string]interface{}{
		"component": "commands.links",
		"ticket":    opts.TicketID,
	})
	log.Debug().Str("command", "GenerateLinks").Msg("Executing command")

	cfg, cat, err := internal.Defaults(opts.Config, opts.Catalog)
	if err != nil {
		return nil, err
	}

	ticket, err := types.ParseTicketID(opts.TicketID)
	if err != nil {
		return nil, err
	}
	ticket = ticket.WithType(opts.TicketType)

	seq, err := internal.Sequence(cfg, cat, opts.Tokens)
	if err != nil {
		return nil, err
	}

	result := &LinksResult{
		Ticket: ticket,
		Tokens: seq.Tokens(),
		Report: rules.Validate(seq, cat),
	}

	if !result.Report.SaveEligible() {
		var failed []string
		for _, f := range result.Report.Failures() {
			failed = append(failed, string(f.Rule.ID))
		}
		log.Debug().Strs("failed", failed).Msg("Sequence rejected")
		return result, errors.New(errors.ErrInvalidInput, "URL structure does not pass validation").
			WithDetail("rules", failed)
	}

	result.URLs = builder.BuildAll(seq, cfg.Environments, ticket)

	renderer, err := cfg.Renderer()
	if err != nil {
		return nil, err
	}
	urls := result.URLs.URLs()
	if result.Markdown, err = renderer.Markdown(urls); err != nil {
		return nil, err
	}
	if result.PlainText, err = renderer.PlainText(urls); err != nil {
		return nil, err
	}

	log.Info().Str("command", "GenerateLinks").Int("environments", len(result.URLs)).Msg("Command finished")
	return result, nil
}
