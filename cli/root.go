// Package cli wires configuration, logging and services into the wealth
// command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wealth-objective/config"
	"wealth-objective/logging"
	"wealth-objective/projection"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

const (
	ExitOK           = 0
	ExitError        = 1
	ExitInvalidInput = 2
)

type rootOptions struct {
	configPath string
	logLevel   string
	output     string
}

// app carries what PersistentPreRunE initialised.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	output string
}

type appKey struct{}

func fromContext(cmd *cobra.Command) *app {
	if ctx := cmd.Context(); ctx != nil {
		if a, ok := ctx.Value(appKey{}).(*app); ok {
			return a
		}
	}
	return &app{cfg: &config.Config{}, logger: zap.NewNop(), output: "text"}
}

// NewRootCommand builds the wealth command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "wealth",
		Short:   "EME Wealth Objetive: planificador de patrimonio y viabilidad financiera",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "text" && opts.output != "json" {
				return fmt.Errorf("invalid output format %q (text, json)", opts.output)
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.logLevel
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey{}, &app{cfg: cfg, logger: logger, output: opts.output}))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = fromContext(cmd).logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(
		newServeCmd(),
		newProjectCmd(),
		newObjectiveCmd(),
		newHoldingsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, projection.ErrInvalidInput):
		return ExitInvalidInput
	default:
		return ExitError
	}
}

// Execute runs the command tree with args and returns the exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return ExitCode(err)
}

// Main is the entry point used by main.go.
func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
