// File: parse.go
// Title: Parse Command
// Description: Parses a source file and prints the syntax tree as the
//              canonical rendering, an indented tree, YAML or JSON.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/lang/ast"
)

// Output formats of the parse command
const (
	OutputText = "text"
	OutputTree = "tree"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

var outputFormats = []string{OutputText, OutputTree, OutputYAML, OutputJSON}

func newParseCmd(a *app) *cobra.Command {
	var output string

	parseCmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a file",
		Long: `Parses a source file and prints its syntax tree.

Output formats:
  text  - canonical rendering, one statement per line (default)
  tree  - indented node tree with positions
  yaml  - node tree as YAML
  json  - node tree as JSON

Examples:
  peregrine parse main.pe
  peregrine parse -o tree main.pe
  peregrine parse --output json main.pe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validOutput(output) {
				return pgerror.Newf("unknown output format %q", output).
					WithCode(pgerror.CodeInvalidInput).
					WithOperation("cmd.parse").
					WithDetail("allowed", outputFormats)
			}

			program, err := a.engine.ParseFile(args[0])
			if err != nil {
				return a.report(cmd, err)
			}
			return writeProgram(cmd.OutOrStdout(), program, output)
		},
	}

	parseCmd.Flags().StringVarP(&output, "output", "o", OutputText, "output format: text, tree, yaml or json")
	return parseCmd
}

func validOutput(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeProgram(w io.Writer, program *ast.Program, format string) error {
	var err error

	switch format {
	case OutputTree:
		_, err = io.WriteString(w, ast.Dump(program))

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(ast.Export(program)); err == nil {
			err = enc.Close()
		}

	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(ast.Export(program))

	default:
		if len(program.Nodes) > 0 {
			_, err = fmt.Fprintln(w, program.String())
		}
	}

	if err != nil {
		return pgerror.Wrap(err, "failed to write syntax tree").
			WithCode(pgerror.CodeWriteFailed).
			WithOperation("cmd.parse").
			WithDetail("format", format)
	}
	return nil
}
