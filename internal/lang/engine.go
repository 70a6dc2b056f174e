// File: engine.go
// Title: Peregrine Front End Engine
// Description: Entry point of the front end. The engine runs the tokenizer
//              and the parser over one source unit with a fresh diagnostic
//              collector per run, reads source files, and checks many files
//              in parallel with a bounded worker group. Every run carries
//              its own correlation id in the logs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial engine implementation

package lang

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/msto63/peregrine/internal/core/config"
	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/core/log"
	"github.com/msto63/peregrine/internal/lang/ast"
	"github.com/msto63/peregrine/internal/lang/diag"
	"github.com/msto63/peregrine/internal/lang/lexer"
	"github.com/msto63/peregrine/internal/lang/parser"
	"github.com/msto63/peregrine/internal/lang/token"
)

// Options configures an Engine
type Options struct {
	Logger          *log.Logger // nil disables logging
	TabWidth        int         // 0 selects lexer.DefaultTabWidth
	DiagnosticLimit int         // 0 keeps all diagnostics
	Workers         int         // 0 selects GOMAXPROCS
}

// OptionsFromConfig derives engine options from a loaded configuration
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) Options {
	return Options{
		Logger:          logger,
		TabWidth:        cfg.Lexer.TabWidth,
		DiagnosticLimit: cfg.Diagnostics.Limit,
		Workers:         cfg.Check.Workers,
	}
}

// Validate checks the options for values the engine cannot work with
func (o Options) Validate() error {
	check := func(name string, value int) error {
		if value >= 0 {
			return nil
		}
		return pgerror.Newf("%s must not be negative", name).
			WithCode(pgerror.CodeInvalidOptions).
			WithOperation("lang.Options.Validate").
			WithDetail("option", name).
			WithDetail("value", value)
	}

	if err := check("tab width", o.TabWidth); err != nil {
		return err
	}
	if err := check("diagnostic limit", o.DiagnosticLimit); err != nil {
		return err
	}
	return check("workers", o.Workers)
}

// Engine runs the front end. It holds no per-run state and is safe for
// concurrent use.
type Engine struct {
	opts   Options
	logger *log.Logger
}

// New creates an engine
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &Engine{opts: opts, logger: logger.WithName("lang")}
}

// FileResult is the outcome of checking one file. Err is a *diag.Failure
// when the file produced diagnostics and a coded error when it could not
// be read.
type FileResult struct {
	Path    string
	Program *ast.Program
	Err     error
}

// OK reports whether the file parsed without diagnostics
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Failure returns the diagnostics of the file, if that is why it failed
func (r FileResult) Failure() (*diag.Failure, bool) {
	return diag.AsFailure(r.Err)
}

// run is the state of one source unit
type run struct {
	src    *diag.Source
	diags  *diag.Collector
	logger *log.Logger
}

func (e *Engine) newRun(filename, text string) *run {
	return &run{
		src:   diag.NewSource(filename, text),
		diags: diag.NewCollector(e.opts.DiagnosticLimit),
		logger: e.logger.
			WithCorrelationID(uuid.NewString()).
			WithField("file", filename),
	}
}

func (r *run) tokenize(tabWidth int) []token.Token {
	return lexer.Tokenize(r.src, r.diags, lexer.Options{TabWidth: tabWidth, Logger: r.logger})
}

// Tokenize returns the token stream of text. When diagnostics were reported
// the tokens produced so far are returned together with a *diag.Failure.
func (e *Engine) Tokenize(filename, text string) ([]token.Token, error) {
	r := e.newRun(filename, text)
	tokens := r.tokenize(e.opts.TabWidth)
	if failure := r.diags.Failure(filename); failure != nil {
		return tokens, failure
	}
	return tokens, nil
}

// Parse tokenizes and parses text. On diagnostics it returns nil and a
// *diag.Failure; a fatal lexical diagnostic skips the parser.
func (e *Engine) Parse(filename, text string) (*ast.Program, error) {
	r := e.newRun(filename, text)
	timer := r.logger.StartTimer("front end")

	tokens := r.tokenize(e.opts.TabWidth)
	if r.diags.Halted() {
		failure := r.diags.Failure(filename)
		timer.WithField("diagnostics", failure.Count()).Stop()
		return nil, failure
	}

	program, err := parser.Parse(r.src, tokens, r.diags, parser.Options{Logger: r.logger})
	if err != nil {
		if failure, ok := diag.AsFailure(err); ok {
			timer.WithField("diagnostics", failure.Count())
		}
		timer.Stop()
		return nil, err
	}

	if err := program.Validate(); err != nil {
		wrapped := pgerror.Wrap(err, "parser produced an invalid tree").
			WithCode(pgerror.CodeInternal).
			WithSeverity(pgerror.SeverityCritical).
			WithOperation("lang.Parse").
			WithDetail("file", filename)
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	timer.WithField("statements", len(program.Nodes)).Stop()
	return program, nil
}

// ParseFile reads and parses the file at path
func (e *Engine) ParseFile(path string) (*ast.Program, error) {
	text, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Parse(path, text)
}

// ReadSource reads the file at path, mapping failures to coded errors
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}

	code := pgerror.CodeReadFailed
	message := "failed to read source file"
	if errors.Is(err, fs.ErrNotExist) {
		code = pgerror.CodeNotFound
		message = "source file not found"
	}
	return "", pgerror.Wrap(err, message).
		WithCode(code).
		WithOperation("lang.ReadSource").
		WithDetail("path", path)
}

// CheckFiles parses every file in paths using up to Options.Workers
// goroutines. Results keep the order of paths. Files not started before
// ctx is done are reported as canceled.
func (e *Engine) CheckFiles(ctx context.Context, paths []string) []FileResult {
	results := make([]FileResult, len(paths))
	timer := e.logger.StartTimer("check").WithField("files", len(paths))

	workers := e.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = e.checkFile(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	timer.WithField("failed", failed).WithField("workers", workers).Stop()

	return results
}

func (e *Engine) checkFile(ctx context.Context, path string) FileResult {
	if err := ctx.Err(); err != nil {
		return FileResult{
			Path: path,
			Err: pgerror.Wrap(err, "check canceled").
				WithCode(pgerror.CodeCanceled).
				WithSeverity(pgerror.SeverityLow).
				WithOperation("lang.CheckFiles").
				WithDetail("path", path),
		}
	}

	program, err := e.ParseFile(path)
	return FileResult{Path: path, Program: program, Err: err}
}
