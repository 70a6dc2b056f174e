// File: check.go
// Title: Check Command
// Description: Parses many source files in parallel and reports the
//              diagnostics of every failing file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.0: Expand directory arguments

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/lang"
	"github.com/msto63/peregrine/internal/utils/filex"
)

func newCheckCmd(a *app) *cobra.Command {
	var workers int

	checkCmd := &cobra.Command{
		Use:   "check <files or directories...>",
		Short: "Parse many files in parallel",
		Long: `Parses every given file and reports diagnostics. Directories are
searched recursively for *.pe files. Files are checked in parallel;
results are printed in argument order.

Examples:
  peregrine check src/*.pe
  peregrine check ./examples
  peregrine check --workers 4 a.pe b.pe c.pe`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := a.engine
			if cmd.Flags().Changed("workers") {
				opts := lang.OptionsFromConfig(a.cfg, a.logger)
				opts.Workers = workers
				if err := opts.Validate(); err != nil {
					return err
				}
				engine = lang.New(opts)
			}

			paths, err := filex.ExpandPaths(args, lang.SourcePattern)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return pgerror.New("no source files found").
					WithCode(pgerror.CodeNotFound).
					WithOperation("cmd.check").
					WithDetail("pattern", lang.SourcePattern)
			}

			results := engine.CheckFiles(cmd.Context(), paths)
			return a.printResults(cmd, results)
		},
	}

	checkCmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (default: config, 0 = number of CPUs)")
	return checkCmd
}

func (a *app) printResults(cmd *cobra.Command, results []lang.FileResult) error {
	out := cmd.OutOrStdout()
	renderer := a.renderer(cmd)

	passed, failed, broken := 0, 0, 0
	for _, r := range results {
		if r.OK() {
			passed++
			fmt.Fprintf(out, "ok      %s\n", r.Path)
			continue
		}

		if f, ok := r.Failure(); ok {
			failed++
			fmt.Fprintf(out, "FAIL    %s (%d)\n", r.Path, f.Count())
			if err := renderer.PrintFailure(f); err != nil {
				return err
			}
			continue
		}

		broken++
		fmt.Fprintf(out, "ERROR   %s\n", r.Path)
		printError(cmd.ErrOrStderr(), r.Err)
		a.logger.LogError(r.Err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Checked %d file(s): %d ok, %d failed, %d unreadable\n",
		len(results), passed, failed, broken)

	switch {
	case broken > 0:
		return &exitError{code: lang.ExitError}
	case failed > 0:
		return &exitError{code: lang.ExitDiagnostics}
	default:
		return nil
	}
}
