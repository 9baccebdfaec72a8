package edit

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/commands/validate"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/rules"
	"github.com/arthur-debert/ticketlink/pkg/sequence"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Action is a sequence mutation
type Action string

const (
	ActionMove   Action = "move"
	ActionInsert Action = "insert"
	ActionRemove Action = "remove"
)

// EditSequenceOptions defines the options for the EditSequence command.
// Indexes are zero-based.
type EditSequenceOptions struct {
	Config  *config.Config
	Catalog *catalog.Catalog

	// Tokens is the sequence to edit; empty means the configured one.
	Tokens []string

	Action Action

	// From and To are used by ActionMove.
	From int
	To   int

	// Index is used by ActionInsert and ActionRemove.
	Index int

	// Component is the token or catalog id inserted by ActionInsert.
	Component string
}

// EditResult holds the sequence before and after the edit and the
// validation of the new sequence. Nothing is persisted.
type EditResult struct {
	Action     Action                   `json:"action" yaml:"action"`
	Before     []string                 `json:"before" yaml:"before"`
	After      []string                 `json:"after" yaml:"after"`
	Validation *validate.ValidateResult `json:"validation" yaml:"validation"`
}

// EditSequence applies one move, insert or remove and re-validates the
// result.
func EditSequence(opts EditSequenceOptions) (*EditResult, error) {
	log := logging.GetLogger("commands.edit")
	log.Debug().Str("command", "EditSequence").Str("action", string(opts.Action)).Msg("Executing command")

	cfg, cat, err := internal.Defaults(opts.Config, opts.Catalog)
	if err != nil {
		return nil, err
	}

	seq, err := internal.Sequence(cfg, cat, opts.Tokens)
	if err != nil {
		return nil, err
	}

	var edited sequence.Sequence
	switch opts.Action {
	case ActionMove:
		edited, err = sequence.Move(seq, opts.From, opts.To)
	case ActionInsert:
		var entry *types.Entry
		if entry, err = LookupEntry(cat, opts.Component); err == nil {
			edited, err = sequence.Insert(seq, opts.Index, entry)
		}
	case ActionRemove:
		edited, err = sequence.Remove(seq, opts.Index)
	default:
		err = errors.Newf(errors.ErrInvalidInput, "unknown sequence action %q", opts.Action).
			WithDetail("action", string(opts.Action))
	}
	if err != nil {
		return nil, err
	}

	result := &EditResult{
		Action:     opts.Action,
		Before:     seq.Tokens(),
		After:      edited.Tokens(),
		Validation: validate.NewResult(edited.Tokens(), rules.Validate(edited, cat)),
	}

	log.Info().Str("command", "EditSequence").Strs("after", result.After).Msg("Command finished")
	return result, nil
}

// LookupEntry finds a catalog entry by token first and by id second
func LookupEntry(cat *catalog.Catalog, component string) (*types.Entry, error) {
	if entry, err := cat.ByToken(component); err == nil {
		return entry, nil
	}
	if entry, err := cat.Get(component); err == nil {
		return entry, nil
	}
	return nil, errors.Newf(errors.ErrUnknownComponent, "unknown component %q", component).
		WithDetail("token", component)
}
