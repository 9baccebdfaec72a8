package ticketlink

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/output"
	"github.com/arthur-debert/ticketlink/pkg/style"
)

// runContext bundles what every command needs once flags are parsed
type runContext struct {
	cfg         *config.Config
	out         io.Writer
	color       bool
	renderer    *output.Renderer
	errRenderer *output.Renderer
}

func newRunContext(cmd *cobra.Command) (*runContext, error) {
	configFile, _ := cmd.Root().PersistentFlags().GetString("config")
	noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")
	overrides, _ := cmd.Root().PersistentFlags().GetStringArray("set")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	renderer, err := output.NewRenderer(out, !style.ColorEnabled(out, noColor))
	if err != nil {
		return nil, err
	}
	errRenderer, err := output.NewRenderer(errOut, !style.ColorEnabled(errOut, noColor))
	if err != nil {
		return nil, err
	}

	return &runContext{
		cfg:         cfg,
		out:         out,
		color:       style.ColorEnabled(out, noColor),
		renderer:    renderer,
		errRenderer: errRenderer,
	}, nil
}

// show prints a result as JSON/YAML or through its template
func (rc *runContext) show(format, tmpl string, result interface{}) error {
	if output.IsStructured(format) {
		return output.Encode(rc.out, result, format)
	}
	return rc.renderer.Render(tmpl, result)
}

func checkFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "unsupported format %q, use one of %s", format, strings.Join(allowed, ", ")).
		WithDetail("format", format)
}

func formatUsage(allowed []string) string {
	return fmt.Sprintf(MsgFlagFormat, strings.Join(allowed, "|"))
}
