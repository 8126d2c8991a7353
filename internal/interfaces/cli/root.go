// Package cli implements the fintag command tree: global flags, config
// loading, logger initialization, and subcommand wiring.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/FinNote-Intelligence/internal/application/tagging"
	"github.com/turtacn/FinNote-Intelligence/internal/config"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/internal/intelligence/notetag"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config  *config.Config
	Logger  logging.Logger
	Service tagging.Service
}

// NewRootCommand creates the root cobra command with all global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "fintag",
		Short:   "fintag tags financial entities in disclosure notes",
		Long:    "fintag extracts company names, dates, addresses, amounts, and financial\nconcepts from nature-of-operations disclosure notes and emits taxonomy-tagged\nXML.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file (default: env only)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "override log level (debug|info|warn|error)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "shorthand for --log-level debug")

	cmd.AddCommand(
		newTagCommand(),
		newVersionCommand(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	rec := notetag.NewRecognizer(cfg.Tagger.Recognizer, logger)
	tagger, err := notetag.New(cfg.Tagger, rec, notetag.NewNopMetrics(), logger)
	if err != nil {
		return err
	}

	cliCtx := &CLIContext{
		Config:  cfg,
		Logger:  logger,
		Service: tagging.NewService(tagger, logger),
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// GetCLIContext extracts the initialized CLIContext from a command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	cliCtx, ok := cmd.Context().Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, fmt.Errorf("CLI context not initialized")
	}
	return cliCtx, nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
