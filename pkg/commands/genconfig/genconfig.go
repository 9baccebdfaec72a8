package genconfig

import (
	"github.com/arthur-debert/ticketlink/pkg/commands/internal"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/logging"
)

// GenConfigResult holds a generated configuration document
type GenConfigResult struct {
	ConfigContent string
	Format        string
}

// GenConfig outputs the default configuration with every value commented
// out, ready to be saved as the user's config file
func GenConfig() (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	logger.Debug().Str("command", "GenConfig").Msg("Executing command")

	return &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		Format:        config.FormatTOML,
	}, nil
}

// ShowConfigOptions holds options for the ShowConfig command
type ShowConfigOptions struct {
	// Config is the effective configuration. Nil means built-in defaults.
	Config *config.Config

	// Format is toml, yaml or json; empty means toml.
	Format string
}

// ShowConfig encodes the effective configuration
func ShowConfig(opts ShowConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	logger.Debug().Str("command", "ShowConfig").Str("format", opts.Format).Msg("Executing command")

	cfg, _, err := internal.Defaults(opts.Config, nil)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		format = config.FormatTOML
	}

	content, err := config.Export(cfg, format)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("command", "ShowConfig").Strs("sources", cfg.Source).Msg("Command finished")
	return &GenConfigResult{ConfigContent: string(content), Format: format}, nil
}
