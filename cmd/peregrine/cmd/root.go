// File: root.go
// Title: Peregrine Command Line Root
// Description: Root command, persistent flags and the shared setup that
//              loads the configuration, builds the logger and creates the
//              front end engine for the subcommands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial command line

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/peregrine/internal/core/config"
	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/core/log"
	"github.com/msto63/peregrine/internal/lang"
	"github.com/msto63/peregrine/internal/lang/diag"
)

// app is the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool
	color   string

	cfg    *config.Config
	logger *log.Logger
	engine *lang.Engine
}

// exitError ends the process with code after output was already written
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "peregrine",
		Short: "Peregrine language front end",
		Long: `peregrine tokenizes and parses Peregrine source files and reports
diagnostics with source excerpts.

Commands:
  tokens   - list the tokens of a file
  parse    - print the syntax tree of a file
  check    - parse many files in parallel

Exit status is 0 on success, 1 when diagnostics were reported and 2 on
usage, file or configuration errors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: peregrine.toml|yaml in . or ./config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log phase timings to stderr")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", "color diagnostics: auto, always or never")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, newRootCmd(), os.Args[1:])
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return lang.ExitOK
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	printError(rootCmd.ErrOrStderr(), err)
	return lang.ExitError
}

// setup loads the configuration and builds logger and engine
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("color") {
		if _, err := diag.ParseColorMode(a.color); err != nil {
			return pgerror.Wrap(err, "invalid --color flag").
				WithCode(pgerror.CodeInvalidInput).
				WithOperation("cmd.setup").
				WithDetail("value", a.color)
		}
		cfg.Diagnostics.Color = a.color
	}

	level, _ := log.ParseLevel(cfg.Log.Level)
	if a.verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}
	format, _ := log.ParseFormat(cfg.Log.Format)

	a.cfg = cfg
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "peregrine",
	})
	log.SetDefault(a.logger)

	if src := cfg.Source(); src != "" {
		a.logger.Debug("configuration loaded", log.Fields{"path": src})
	}

	opts := lang.OptionsFromConfig(cfg, a.logger)
	if err := opts.Validate(); err != nil {
		return err
	}
	a.engine = lang.New(opts)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// renderer writes diagnostics to stderr honoring the color setting
func (a *app) renderer(cmd *cobra.Command) *diag.Renderer {
	mode, _ := diag.ParseColorMode(a.cfg.Diagnostics.Color)
	return diag.NewRenderer(cmd.ErrOrStderr(), mode, a.cfg.Lexer.TabWidth)
}

// report prints the diagnostics of err, if any, and turns it into an exit
// code. Other errors are passed through.
func (a *app) report(cmd *cobra.Command, err error) error {
	failure, ok := diag.AsFailure(err)
	if !ok {
		return err
	}
	a.logger.LogError(lang.AsError(err))
	if printErr := a.renderer(cmd).PrintFailure(failure); printErr != nil {
		return pgerror.Wrap(printErr, "failed to write diagnostics").WithCode(pgerror.CodeWriteFailed)
	}
	return &exitError{code: lang.ExitDiagnostics}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
