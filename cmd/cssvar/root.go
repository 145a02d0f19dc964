package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cssvar/cmd/cssvar/commands"
	"github.com/walteh/cssvar/cmd/cssvar/opts"
	"github.com/walteh/cssvar/pkg/config"
	"github.com/walteh/cssvar/pkg/log"
	"github.com/walteh/cssvar/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile   string
	baseDir      string
	backupSuffix string
	async        bool
	debug        bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context, console io.Writer) (*opts.RootOpts, error) {
	logger := zerolog.Ctx(ctx)

	// Load config, falling back to the built-in defaults
	cfg, err := config.LoadOrDefault(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Flag overrides
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if backupSuffix != "" {
		cfg.BackupSuffix = backupSuffix
	}
	if async {
		cfg.Async = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &opts.RootOpts{
		Config:     cfg,
		StatusMgr:  status.New(cfg.BackupSuffix, logger),
		Console:    log.New(console, level),
		UserLogger: log.NewUserLogger(ctx),
		Logger:     logger,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".cssvar.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&baseDir, "base-dir", "b", "", "directory target paths are resolved against")
	cmd.PersistentFlags().StringVar(&backupSuffix, "backup-suffix", "", "suffix appended to backup file names")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run operations asynchronously")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// NewRootCmd builds the cssvar command tree
func NewRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "cssvar",
		Short: "Rewrite hardcoded CSS colors into custom property references",
		Long: `cssvar rewrites hardcoded color literals in stylesheets into
references to CSS custom properties (var(--name)), for theme and
dark-mode support. Modified files are backed up first.

Running cssvar with no subcommand is equivalent to "cssvar convert".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.DefaultContextLogger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			built, err := newRootOpts(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			*ro = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunConvert(cmd.Context(), ro)
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(
		commands.NewConvertCmd(ro),
		commands.NewStatusCmd(ro),
		commands.NewRestoreCmd(ro),
	)

	return cmd
}

// TODO(dr.methodical): 🧪 Add tests for flag overrides
