package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

// Structured output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IsStructured reports whether format is handled by Encode
func IsStructured(format string) bool {
	return format == FormatJSON || format == FormatYAML
}

// Encode writes v as indented JSON or YAML
func Encode(w io.Writer, v interface{}, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to encode JSON")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported output format %q", format).
			WithDetail("format", format)
	}
	return nil
}
