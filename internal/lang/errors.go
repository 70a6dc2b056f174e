// File: errors.go
// Title: Front End Error Mapping
// Description: Maps a diagnostic failure onto the coded error type for
//              callers that only handle errors, and computes process exit
//              codes for the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package lang

import (
	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/lang/diag"
)

// SourcePattern matches the base name of Peregrine source files
const SourcePattern = "*.pe"

// Exit codes of the command line
const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitError       = 2
)

// AsError wraps a diagnostic failure into a coded error. Failures with any
// lexical diagnostic map to CodeLexicalError, all others to
// CodeSyntaxError. Other errors are returned unchanged.
func AsError(err error) error {
	failure, ok := diag.AsFailure(err)
	if !ok {
		return err
	}

	code := pgerror.CodeSyntaxError
	if failure.HasClass(diag.Lexical) {
		code = pgerror.CodeLexicalError
	}

	codes := make([]string, 0, len(failure.Diagnostics))
	for _, c := range failure.Codes() {
		codes = append(codes, string(c))
	}

	return pgerror.Wrap(failure, "source has errors").
		WithCode(code).
		WithSeverity(pgerror.SeverityLow).
		WithOperation("lang.Parse").
		WithDetail("file", failure.Filename).
		WithDetail("diagnostics", failure.Count()).
		WithDetail("codes", codes)
}

// ExitCode returns the process exit code for err: ExitOK for nil,
// ExitDiagnostics when the source had errors and ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := diag.AsFailure(err); ok {
		return ExitDiagnostics
	}
	if pgerror.HasCode(err, pgerror.CodeLexicalError) || pgerror.HasCode(err, pgerror.CodeSyntaxError) {
		return ExitDiagnostics
	}
	return ExitError
}
