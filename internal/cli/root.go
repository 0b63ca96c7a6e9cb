package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ntpeters/base16-template-converter/internal/version"
	"github.com/ntpeters/base16-template-converter/pkg/cobrax/topics"
	"github.com/ntpeters/base16-template-converter/pkg/config"
	"github.com/ntpeters/base16-template-converter/pkg/converter"
	"github.com/ntpeters/base16-template-converter/pkg/errors"
	"github.com/ntpeters/base16-template-converter/pkg/filesystem"
	"github.com/ntpeters/base16-template-converter/pkg/logging"
	"github.com/ntpeters/base16-template-converter/pkg/types"
	"github.com/ntpeters/base16-template-converter/pkg/ui"
)

//go:embed topics
var topicsFS embed.FS

// options holds the flag values of one command invocation
type options struct {
	verbosity  int
	dryRun     bool
	stdout     bool
	configFile string
	color      string
	noHeader   bool
	progress   bool
}

// NewRootCmd creates and returns the root command, converting on the OS
// filesystem
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fsys types.FS) *cobra.Command {
	initTemplateFormatting()

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "base16-template-converter FILE...",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, fsys, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&opts.stdout, "stdout", false, MsgFlagStdout)
	rootCmd.Flags().BoolVar(&opts.noHeader, "keep-header", false, MsgFlagNoHeader)
	rootCmd.Flags().BoolVar(&opts.progress, "progress", false, MsgFlagProgress)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		renderer := topics.NewGlamourRenderer()
		if ui.DetectFormat(os.Stdout) == ui.FormatText {
			renderer = topics.NewPlainGlamourRenderer()
		}
		if _, err := topics.Initialize(rootCmd, sub, topics.Options{Renderer: renderer}); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize help topics")
		}
	}

	return rootCmd
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.configFile})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	if opts.color != "" {
		cfg.Output.Color = opts.color
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, fsys types.FS, opts *options, args []string) error {
	logger := logging.GetLogger("cli.convert")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	format, err := ui.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return fmt.Errorf(MsgErrColorMode, err)
	}
	ui.ApplyFormat(format, os.Stdout)

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	reporter := ui.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	reporter.ShowResidual = cfg.Output.ShowResidual
	reporter.MaxResidual = cfg.Output.MaxResidual

	showProgress := (opts.progress || cfg.Output.Progress) && ui.IsTerminal(os.Stderr)

	conv := converter.New(fsys)
	failed := 0
	for _, source := range args {
		convOpts := converter.Options{
			Source:      source,
			DryRun:      opts.dryRun || opts.stdout,
			SourceExt:   cfg.Convert.SourceExtension,
			TargetExt:   cfg.Convert.TargetExtension,
			StripHeader: cfg.Convert.StripHeader && !opts.noHeader,
			FileMode:    mode,
		}

		var progress *ui.Progress
		if showProgress {
			progress = ui.NewProgress(os.Stderr, MsgProgressTitle)
			convOpts.Progress = progress.Step
		}

		res, err := conv.Convert(convOpts)
		if progress != nil {
			progress.Stop()
		}
		if err != nil {
			logger.Error().Err(err).Str("source", source).Msg("Conversion aborted")
			reporter.Error(err)
			failed++
			continue
		}

		if opts.stdout {
			fmt.Fprint(cmd.OutOrStdout(), res.Output)
			// Keep stdout clean for the converted text
			errReporter := ui.NewReporter(cmd.ErrOrStderr(), cmd.ErrOrStderr())
			errReporter.ShowResidual = reporter.ShowResidual
			errReporter.MaxResidual = reporter.MaxResidual
			errReporter.Result(res)
		} else {
			reporter.Result(res)
		}

		if res.Failed {
			failed++
		}
	}

	if failed > 0 {
		return errors.Newf(errors.ErrConversionFailed, MsgFailedSummary, failed, len(args))
	}
	return nil
}
