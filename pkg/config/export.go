package config

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

// Export encodes the configuration as toml, yaml or json
func Export(cfg *Config, format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatTOML, "":
		data, err = toml.Marshal(cfg)
	case FormatYAML, "yml":
		data, err = yaml.Marshal(cfg)
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported export format %q", format).
			WithDetail("format", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "failed to encode configuration as %s", format)
	}
	return data, nil
}
