package list

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// ListComponentsOptions defines the options for the ListComponents command.
type ListComponentsOptions struct {
	// Catalog defaults to the built-in catalog.
	Catalog *catalog.Catalog
}

// ComponentInfo describes one catalog entry for display
type ComponentInfo struct {
	ID          string      `json:"id" yaml:"id"`
	Token       string      `json:"token" yaml:"token"`
	Kind        types.Kind  `json:"kind" yaml:"kind"`
	Field       types.Field `json:"field,omitempty" yaml:"field,omitempty"`
	Label       string      `json:"label" yaml:"label"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Permanent   bool        `json:"permanent" yaml:"permanent"`
	Repeatable  bool        `json:"repeatable" yaml:"repeatable"`
}

// ListComponentsResult holds the catalog in catalog order
type ListComponentsResult struct {
	Components []ComponentInfo `json:"components" yaml:"components"`
}

// ListComponents lists the building blocks a sequence can be made of.
func ListComponents(opts ListComponentsOptions) (*ListComponentsResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListComponents").Msg("Executing command")

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	entries := cat.Entries()
	result := &ListComponentsResult{
		Components: make([]ComponentInfo, len(entries)),
	}

	for i, e := range entries {
		result.Components[i] = ComponentInfo{
			ID:          e.ID,
			Token:       e.Token,
			Kind:        e.Kind,
			Field:       e.Field,
			Label:       e.Label,
			Description: e.Description,
			Permanent:   e.Permanent,
			Repeatable:  e.Repeatable(),
		}
	}

	log.Info().Str("command", "ListComponents").Int("componentCount", len(result.Components)).Msg("Command finished")
	return result, nil
}
