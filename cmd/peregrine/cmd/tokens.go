// File: tokens.go
// Title: Tokens Command
// Description: Lists the token stream of a source file as a table. Tokens
//              are printed even when lexical diagnostics were reported.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/peregrine/internal/lang"
	"github.com/msto63/peregrine/internal/lang/token"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "List the tokens of a file",
		Long: `Tokenizes a source file and prints one row per token with its
position, type and lexeme.

Examples:
  peregrine tokens main.pe
  peregrine tokens --config peregrine.toml main.pe`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := lang.ReadSource(args[0])
			if err != nil {
				return err
			}

			tokens, tokErr := a.engine.Tokenize(args[0], text)
			printTokens(cmd.OutOrStdout(), tokens)
			return a.report(cmd, tokErr)
		},
	}
}

func printTokens(w io.Writer, tokens []token.Token) {
	header := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	fmt.Fprintln(w, header.Render(fmt.Sprintf("%-10s %-16s %s", "POS", "TYPE", "LEXEME")))
	fmt.Fprintln(w, strings.Repeat("-", 44))

	for _, tok := range tokens {
		fmt.Fprintf(w, "%-10s %-16s %s\n", tok.Pos(), tok.Type, lexeme(tok))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d token(s)\n", len(tokens))
}

func lexeme(tok token.Token) string {
	switch tok.Type {
	case token.Indent, token.Dedent:
		return "level " + strconv.Itoa(tok.Level)
	case token.Newline:
		return ""
	case token.String:
		return strconv.Quote(tok.Keyword)
	default:
		return tok.Keyword
	}
}
