package ticketlink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ticketlink/internal/version"
	"github.com/arthur-debert/ticketlink/pkg/commands"
	"github.com/arthur-debert/ticketlink/pkg/commands/edit"
	"github.com/arthur-debert/ticketlink/pkg/commands/validate"
	"github.com/arthur-debert/ticketlink/pkg/config"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/output"
	"github.com/arthur-debert/ticketlink/pkg/style"
)

var (
	linkFormats   = []string{config.FormatMarkdown, config.FormatText, config.FormatJSON, config.FormatYAML}
	reportFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}
	configFormats = []string{config.FormatTOML, config.FormatYAML, config.FormatJSON}
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:     "ticketlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			style.Configure(cmd.OutOrStdout(), noColor)
			log.Debug().Str("command", cmd.Name()).Str("config", configFile).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringArray("set", nil, MsgFlagSet)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sequence",
		Title: "SEQUENCE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newLinksCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newSequenceCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newPatternCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic help comes last so it can list every command
	if err := initTopics(rootCmd, &noColor); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

func newLinksCmd() *cobra.Command {
	var (
		format     string
		ticketType string
		raw        bool
		tokens     []string
	)

	cmd := &cobra.Command{
		Use:     "links <TICKET-ID>",
		Short:   MsgLinksShort,
		Long:    MsgLinksLong,
		Example: MsgLinksExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			if format == "" {
				format = rc.cfg.Output.Format
			}
			if err := checkFormat(format, linkFormats); err != nil {
				return err
			}

			log.Info().Str("ticket", args[0]).Str("format", format).Msg("Generating links")

			result, err := commands.GenerateLinks(commands.GenerateLinksOptions{
				Config:     rc.cfg,
				TicketID:   args[0],
				TicketType: ticketType,
				Tokens:     tokens,
			})
			if err != nil {
				if result != nil {
					// the sequence was rejected, show why
					_ = rc.errRenderer.Render(output.TemplateValidate, validate.NewResult(result.Tokens, result.Report))
				}
				return fmt.Errorf(MsgErrGenerateLinks, err)
			}

			if output.IsStructured(format) {
				return output.Encode(rc.out, result, format)
			}

			if len(result.URLs) == 0 {
				return rc.errRenderer.RenderMessage("warning", MsgNoEnvironments)
			}
			if len(result.URLs.Invalid()) > 0 {
				_ = rc.errRenderer.Render(output.TemplateLinks, result)
			}

			if format == config.FormatText {
				_, err = fmt.Fprintln(rc.out, result.PlainText)
				return err
			}

			if !raw && rc.cfg.Output.Glamour && rc.color {
				renderer := style.NewGlamourRenderer()
				renderer.Style = rc.cfg.Output.Style
				_, err = fmt.Fprint(rc.out, renderer.Render(result.Markdown))
				return err
			}
			_, err = fmt.Fprintln(rc.out, result.Markdown)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", formatUsage(linkFormats))
	cmd.Flags().StringVarP(&ticketType, "type", "t", "", MsgFlagType)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	cmd.Flags().StringSliceVar(&tokens, "tokens", nil, MsgFlagTokens)

	return cmd
}

func newExtractCmd() *cobra.Command {
	var (
		format   string
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:     "extract <url>",
		Short:   MsgExtractShort,
		Long:    MsgExtractLong,
		Example: MsgExtractExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, reportFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ExtractTicket(commands.ExtractTicketOptions{
				Config:   rc.cfg,
				URL:      args[0],
				Prefixes: prefixes,
			})
			if err != nil {
				return fmt.Errorf(MsgErrExtract, err)
			}

			for _, s := range result.Skipped {
				_ = rc.errRenderer.RenderMessage("muted", fmt.Sprintf(MsgSkippedPattern, s.Pattern, s.Error))
			}

			if output.IsStructured(format) {
				if err := output.Encode(rc.out, result, format); err != nil {
					return err
				}
			} else if result.Found {
				if err := rc.renderer.Render(output.TemplateExtract, result); err != nil {
					return err
				}
			}

			if !result.Found {
				return errors.Newf(errors.ErrNotFound, MsgNoTicketFound, args[0]).WithDetail("url", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))
	cmd.Flags().StringSliceVarP(&prefixes, "prefix", "p", nil, MsgFlagExtractPrefix)

	return cmd
}

func newValidateCmd() *cobra.Command {
	var (
		format string
		tokens []string
	)

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		Args:    cobra.NoArgs,
		GroupID: "sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, reportFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ValidateSequence(commands.ValidateSequenceOptions{
				Config: rc.cfg,
				Tokens: tokens,
			})
			if err != nil {
				return fmt.Errorf(MsgErrValidate, err)
			}

			if err := rc.show(format, output.TemplateValidate, result); err != nil {
				return err
			}
			if !result.SaveEligible {
				return errors.New(errors.ErrInvalidInput, MsgNotSaveEligible)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))
	cmd.Flags().StringSliceVar(&tokens, "tokens", nil, MsgFlagTokens)

	return cmd
}

func newPreviewCmd() *cobra.Command {
	var (
		format string
		prefix string
		number string
		tokens []string
	)

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		Args:    cobra.NoArgs,
		GroupID: "sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, reportFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			result, err := commands.Preview(commands.PreviewOptions{
				Config: rc.cfg,
				Prefix: prefix,
				Number: number,
				Tokens: tokens,
			})
			if err != nil {
				return fmt.Errorf(MsgErrPreview, err)
			}

			return rc.show(format, output.TemplatePreview, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", MsgFlagPreviewPrefix)
	cmd.Flags().StringVarP(&number, "number", "n", "", MsgFlagNumber)
	cmd.Flags().StringSliceVar(&tokens, "tokens", nil, MsgFlagTokens)

	return cmd
}

func newSequenceCmd() *cobra.Command {
	var (
		format string
		tokens []string
	)

	run := func(cmd *cobra.Command, opts commands.EditSequenceOptions) error {
		if err := checkFormat(format, reportFormats); err != nil {
			return err
		}
		rc, err := newRunContext(cmd)
		if err != nil {
			return err
		}

		opts.Config = rc.cfg
		opts.Tokens = tokens
		result, err := commands.EditSequence(opts)
		if err != nil {
			return fmt.Errorf(MsgErrEditSequence, err)
		}
		return rc.show(format, output.TemplateEdit, result)
	}

	cmd := &cobra.Command{
		Use:     "sequence",
		Short:   MsgSequenceShort,
		Long:    MsgSequenceLong,
		Example: MsgSequenceExample,
		GroupID: "sequence",
	}

	cmd.PersistentFlags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))
	cmd.PersistentFlags().StringSliceVar(&tokens, "tokens", nil, MsgFlagTokens)

	cmd.AddCommand(&cobra.Command{
		Use:   "move <from> <to>",
		Short: MsgSequenceMoveShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex("from", args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex("to", args[1])
			if err != nil {
				return err
			}
			return run(cmd, commands.EditSequenceOptions{Action: edit.ActionMove, From: from, To: to})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "insert <index> <token>",
		Short: MsgSequenceInsertShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("index", args[0])
			if err != nil {
				return err
			}
			return run(cmd, commands.EditSequenceOptions{Action: edit.ActionInsert, Index: index, Component: args[1]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <index>",
		Short: MsgSequenceRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex("index", args[0])
			if err != nil {
				return err
			}
			return run(cmd, commands.EditSequenceOptions{Action: edit.ActionRemove, Index: index})
		},
	})

	return cmd
}

func parseIndex(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgErrIndex, name, value).WithDetail(name, value)
	}
	return n, nil
}

func newCatalogCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   MsgCatalogShort,
		Long:    MsgCatalogLong,
		Args:    cobra.NoArgs,
		GroupID: "sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, reportFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ListComponents(commands.ListComponentsOptions{})
			if err != nil {
				return err
			}
			return rc.show(format, output.TemplateCatalog, result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))

	return cmd
}

func newPatternCmd() *cobra.Command {
	var (
		format   string
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:     "pattern",
		Short:   MsgPatternShort,
		Long:    MsgPatternLong,
		GroupID: "core",
	}

	check := &cobra.Command{
		Use:     "check <pattern> [sample-url...]",
		Short:   MsgPatternCheckShort,
		Long:    MsgPatternLong,
		Example: MsgPatternExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, reportFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			if len(prefixes) == 0 {
				prefixes = rc.cfg.Prefixes
			}

			result, err := commands.CheckPattern(commands.CheckPatternOptions{
				Pattern:  args[0],
				Samples:  args[1:],
				Prefixes: prefixes,
			})
			if err != nil {
				return err
			}

			if err := rc.show(format, output.TemplatePattern, result); err != nil {
				return err
			}
			if !result.Valid {
				return errors.Newf(errors.ErrInvalidPattern, MsgPatternInvalid, args[0])
			}
			return nil
		},
	}

	check.Flags().StringVarP(&format, "format", "f", config.FormatText, formatUsage(reportFormats))
	check.Flags().StringSliceVarP(&prefixes, "prefix", "p", nil, MsgFlagExtractPrefix)
	cmd.AddCommand(check)

	return cmd
}

func newConfigCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, configFormats); err != nil {
				return err
			}
			rc, err := newRunContext(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ShowConfig(commands.ShowConfigOptions{Config: rc.cfg, Format: format})
			if err != nil {
				return err
			}

			if format != config.FormatJSON {
				fmt.Fprintf(rc.out, MsgConfigSources, strings.Join(rc.cfg.Source, ", "))
			}
			_, err = fmt.Fprint(rc.out, result.ConfigContent)
			return err
		},
	}
	show.Flags().StringVarP(&format, "format", "f", config.FormatTOML, formatUsage(configFormats))

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.ConfigContent)
			return err
		},
	}

	cmd.AddCommand(show)
	cmd.AddCommand(initCmd)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
