package ticketlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Build environment links from ticket ids and ticket URLs"
	MsgLinksShort          = "Print the links of a ticket for every environment"
	MsgExtractShort        = "Find the ticket id in a URL"
	MsgValidateShort       = "Check a sequence against the structural rules"
	MsgPreviewShort        = "Show the URLs a sequence produces"
	MsgSequenceShort       = "Edit a copy of the sequence"
	MsgSequenceMoveShort   = "Move the component at <from> to <to>"
	MsgSequenceInsertShort = "Insert a component at <index>"
	MsgSequenceRemoveShort = "Remove the component at <index>"
	MsgPatternShort        = "Work with ticket URL patterns"
	MsgPatternCheckShort   = "Compile-check a pattern and try it on sample URLs"
	MsgCatalogShort        = "List the components a sequence can use"
	MsgCatalogLong         = "Catalog lists every component with the token used for it in a sequence."
	MsgConfigShort         = "Inspect the configuration"
	MsgConfigShowShort     = "Print the effective configuration"
	MsgConfigInitShort     = "Print a commented default configuration"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"

	// Status messages
	MsgNoEnvironments  = "No environment has a base URL configured."
	MsgSkippedPattern  = "skipped invalid pattern %s: %s"
	MsgVersionFormat   = "ticketlink %s (commit %s, built %s)\n"
	MsgConfigSources   = "# sources: %s\n"
	MsgNoTicketFound   = "no ticket id found in %s"
	MsgNotSaveEligible = "the URL structure does not pass validation"
	MsgPatternInvalid  = "pattern %q is not usable"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrGenerateLinks = "failed to generate links: %w"
	MsgErrExtract       = "failed to extract ticket id: %w"
	MsgErrValidate      = "failed to validate sequence: %w"
	MsgErrPreview       = "failed to preview sequence: %w"
	MsgErrEditSequence  = "failed to edit sequence: %w"
	MsgErrIndex         = "%s must be a whole number, got %q"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Read configuration from this file instead of the user config"
	MsgFlagNoColor       = "Disable colored output"
	MsgFlagSet           = "Override a setting for this run, as key=value (repeatable)"
	MsgFlagFormat        = "Output format (%s)"
	MsgFlagType          = "Ticket type used for the ticket type component"
	MsgFlagRaw           = "Print Markdown source instead of rendering it"
	MsgFlagTokens        = "Comma-separated sequence tokens to use instead of the configured sequence"
	MsgFlagExtractPrefix = "Issue prefix, may be repeated (default: configured prefixes)"
	MsgFlagPreviewPrefix = "Issue prefix used for the preview (default: first configured prefix)"
	MsgFlagNumber        = "Ticket number used for the preview"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/links-long.txt
	msgLinksLongRaw string
	MsgLinksLong    = strings.TrimSpace(msgLinksLongRaw)

	//go:embed msgs/links-example.txt
	msgLinksExampleRaw string
	MsgLinksExample    = strings.TrimRight(msgLinksExampleRaw, "\n")

	//go:embed msgs/extract-long.txt
	msgExtractLongRaw string
	MsgExtractLong    = strings.TrimSpace(msgExtractLongRaw)

	//go:embed msgs/extract-example.txt
	msgExtractExampleRaw string
	MsgExtractExample    = strings.TrimRight(msgExtractExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimRight(msgValidateExampleRaw, "\n")

	//go:embed msgs/preview-long.txt
	msgPreviewLongRaw string
	MsgPreviewLong    = strings.TrimSpace(msgPreviewLongRaw)

	//go:embed msgs/sequence-long.txt
	msgSequenceLongRaw string
	MsgSequenceLong    = strings.TrimSpace(msgSequenceLongRaw)

	//go:embed msgs/sequence-example.txt
	msgSequenceExampleRaw string
	MsgSequenceExample    = strings.TrimRight(msgSequenceExampleRaw, "\n")

	//go:embed msgs/pattern-long.txt
	msgPatternLongRaw string
	MsgPatternLong    = strings.TrimSpace(msgPatternLongRaw)

	//go:embed msgs/pattern-example.txt
	msgPatternExampleRaw string
	MsgPatternExample    = strings.TrimRight(msgPatternExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
