// Package commands provides high-level command implementations for ticketlink.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the URL pattern engine.
//
// Each command is implemented in its own subdirectory:
//   - links/     - GenerateLinks command
//   - extract/   - ExtractTicket command
//   - validate/  - ValidateSequence command
//   - preview/   - Preview command
//   - edit/      - EditSequence command (move, insert, remove)
//   - pattern/   - CheckPattern command
//   - list/      - ListComponents command
//   - genconfig/ - GenConfig and ShowConfig commands
//   - internal/  - Shared config and sequence resolution
//
// Commands never write configuration; results are returned to the caller.
package commands

import (
	"github.com/arthur-debert/ticketlink/pkg/commands/edit"
	"github.com/arthur-debert/ticketlink/pkg/commands/extract"
	"github.com/arthur-debert/ticketlink/pkg/commands/genconfig"
	"github.com/arthur-debert/ticketlink/pkg/commands/links"
	"github.com/arthur-debert/ticketlink/pkg/commands/list"
	"github.com/arthur-debert/ticketlink/pkg/commands/pattern"
	"github.com/arthur-debert/ticketlink/pkg/commands/preview"
	"github.com/arthur-debert/ticketlink/pkg/commands/validate"
)

// GenerateLinks builds and renders the links of a ticket for every environment.
type GenerateLinksOptions = links.GenerateLinksOptions
type LinksResult = links.LinksResult

func GenerateLinks(opts GenerateLinksOptions) (*LinksResult, error) {
	return links.GenerateLinks(opts)
}

// ExtractTicket finds the ticket id in a URL.
type ExtractTicketOptions = extract.ExtractTicketOptions
type ExtractResult = extract.ExtractResult

func ExtractTicket(opts ExtractTicketOptions) (*ExtractResult, error) {
	return extract.ExtractTicket(opts)
}

// ValidateSequence runs the structural rules over a sequence.
type ValidateSequenceOptions = validate.ValidateSequenceOptions
type ValidateResult = validate.ValidateResult

func ValidateSequence(opts ValidateSequenceOptions) (*ValidateResult, error) {
	return validate.ValidateSequence(opts)
}

// Preview shows the URLs a sequence produces.
type PreviewOptions = preview.PreviewOptions
type PreviewResult = preview.PreviewResult

func Preview(opts PreviewOptions) (*PreviewResult, error) {
	return preview.Preview(opts)
}

// EditSequence moves, inserts or removes one component.
type EditSequenceOptions = edit.EditSequenceOptions
type EditResult = edit.EditResult

func EditSequence(opts EditSequenceOptions) (*EditResult, error) {
	return edit.EditSequence(opts)
}

// CheckPattern compile-checks a ticket URL pattern.
type CheckPatternOptions = pattern.CheckPatternOptions
type CheckPatternResult = pattern.CheckPatternResult

func CheckPattern(opts CheckPatternOptions) (*CheckPatternResult, error) {
	return pattern.CheckPattern(opts)
}

// ListComponents lists the component catalog.
type ListComponentsOptions = list.ListComponentsOptions
type ListComponentsResult = list.ListComponentsResult

func ListComponents(opts ListComponentsOptions) (*ListComponentsResult, error) {
	return list.ListComponents(opts)
}

// GenConfig outputs the commented default configuration.
type GenConfigResult = genconfig.GenConfigResult

func GenConfig() (*GenConfigResult, error) {
	return genconfig.GenConfig()
}

// ShowConfig encodes the effective configuration.
type ShowConfigOptions = genconfig.ShowConfigOptions

func ShowConfig(opts ShowConfigOptions) (*GenConfigResult, error) {
	return genconfig.ShowConfig(opts)
}
