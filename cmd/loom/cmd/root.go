// Package cmd implements the loom CLI commands.
//
// The root command resolves loom.yaml, installs the logger and error handler
// and dispatches to subcommands (apps, run, stats, version).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/loom/cmd/loom/internal/config"
	"github.com/go-drift/loom/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	dir      string
	logLevel string
	verbose  bool

	cfg    *config.Resolved
	logger *slog.Logger
	// closeLog releases the log file, if one was opened.
	closeLog func() error
}

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "loom",
		Short: "Loom - retained widgets driven by an Elm-style update loop",
		Long: `Loom reconciles immutable views against a retained widget tree.

Use "loom <command> --help" for more information about a command.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.closeLog != nil {
				return o.closeLog()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.dir, "dir", "", "Project directory holding loom.yaml (default: nearest parent with loom.yaml or go.mod)")
	flags.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log stack traces for reported errors")

	addApps(cmd)
	addRun(cmd, o)
	addStats(cmd, o)
	addVersion(cmd)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return New().Execute()
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	dir := o.dir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		dir = root
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(o.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if o.verbose {
		cfg.Verbose = true
	}
	o.cfg = cfg

	w, err := o.logOutput(cmd)
	if err != nil {
		return err
	}
	o.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	errors.SetHandler(&errors.LogHandler{Logger: o.logger, Verbose: cfg.Verbose})
	return nil
}

// logOutput picks where logs go. The terminal backend owns stdout and
// stderr while it runs, so run logs only to log.file.
func (o *rootOptions) logOutput(cmd *cobra.Command) (io.Writer, error) {
	if o.cfg.LogFile != "" {
		f, err := os.OpenFile(o.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		o.closeLog = f.Close
		return f, nil
	}
	if cmd.Name() == "run" {
		return io.Discard, nil
	}
	return cmd.ErrOrStderr(), nil
}
