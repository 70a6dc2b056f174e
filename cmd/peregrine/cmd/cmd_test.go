// File: cmd_test.go
// Title: Command Line Tests
// Description: Runs the command tree in-process and checks output and
//              exit codes of every subcommand.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/msto63/peregrine/internal/lang"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	code := run(context.Background(), rootCmd, args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestVersion(t *testing.T) {
	res := execute(t, "version")
	if res.code != lang.ExitOK {
		t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "peregrine v"+Version) {
		t.Errorf("Expected version line, got %q", res.stdout)
	}
}

func TestTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "decl.pe", "int x = 5\n")

	res := execute(t, "tokens", path)
	if res.code != lang.ExitOK {
		t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
	}
	for _, want := range []string{"POS", "1:5", "IDENTIFIER", "INTEGER", "NEWLINE", "Total: 5 token(s)"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, res.stdout)
		}
	}
}

func TestTokensWithDiagnostics(t *testing.T) {
	path := writeFile(t, t.TempDir(), "chars.pe", "x = 1 $\n")

	res := execute(t, "--color", "never", "tokens", path)
	if res.code != lang.ExitDiagnostics {
		t.Fatalf("Expected exit code 1, got %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "Total: 4 token(s)") {
		t.Errorf("Expected tokens to be listed, got:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "error[E0001]") {
		t.Errorf("Expected E0001 on stderr, got:\n%s", res.stderr)
	}
}

func TestParseOutputs(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.pe", "int x = 1 + 2 * 3\nx += 1\n")

	t.Run("text", func(t *testing.T) {
		res := execute(t, "parse", path)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		want := "int x = (1 + (2 * 3))\nx += 1\n"
		if res.stdout != want {
			t.Errorf("Expected %q, got %q", want, res.stdout)
		}
	})

	t.Run("tree", func(t *testing.T) {
		res := execute(t, "parse", "-o", "tree", path)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		for _, want := range []string{"Program", "VariableDeclaration", "BinaryOperation", "VariableReassignment"} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("Expected tree to contain %q, got:\n%s", want, res.stdout)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		res := execute(t, "parse", "--output", "json", path)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		var tree map[string]interface{}
		if err := json.Unmarshal([]byte(res.stdout), &tree); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, res.stdout)
		}
		if tree["kind"] != "Program" {
			t.Errorf("Expected kind Program, got %v", tree["kind"])
		}
		if nodes, _ := tree["nodes"].([]interface{}); len(nodes) != 2 {
			t.Errorf("Expected 2 nodes, got %v", tree["nodes"])
		}
	})

	t.Run("yaml", func(t *testing.T) {
		res := execute(t, "parse", "--output", "yaml", path)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		var tree map[string]interface{}
		if err := yaml.Unmarshal([]byte(res.stdout), &tree); err != nil {
			t.Fatalf("invalid YAML: %v\n%s", err, res.stdout)
		}
		if tree["kind"] != "Program" {
			t.Errorf("Expected kind Program, got %v", tree["kind"])
		}
	})
}

func TestParseUnknownOutput(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.pe", "x = 1\n")

	res := execute(t, "parse", "--output", "xml", path)
	if res.code != lang.ExitError {
		t.Fatalf("Expected exit code 2, got %d", res.code)
	}
	if !strings.Contains(res.stderr, "unknown output format") {
		t.Errorf("Expected error message, got %q", res.stderr)
	}
}

func TestParseDiagnostics(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.pe", "int x = 1\ny = )\n")

	res := execute(t, "--color", "never", "parse", path)
	if res.code != lang.ExitDiagnostics {
		t.Fatalf("Expected exit code 1, got %d: %s", res.code, res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("Expected no tree on stdout, got %q", res.stdout)
	}

	for _, want := range []string{
		"error[E0101]: unexpected token",
		"--> " + path + ":2:5",
		" 2 | y = )",
		"   |     ^",
		"= unexpected ')' in expression",
		path + ": 1 error",
	} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("Expected stderr to contain %q, got:\n%s", want, res.stderr)
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	res := execute(t, "parse", filepath.Join(t.TempDir(), "missing.pe"))
	if res.code != lang.ExitError {
		t.Fatalf("Expected exit code 2, got %d", res.code)
	}
	if !strings.Contains(res.stderr, "source file not found") {
		t.Errorf("Expected not found message, got %q", res.stderr)
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.pe", "int x = 1\n")
	bad := writeFile(t, dir, "bad.pe", "x = )\n")

	t.Run("all good", func(t *testing.T) {
		res := execute(t, "check", good, good)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "Checked 2 file(s): 2 ok, 0 failed") {
			t.Errorf("Expected summary, got:\n%s", res.stdout)
		}
	})

	t.Run("diagnostics", func(t *testing.T) {
		res := execute(t, "--color", "never", "check", "--workers", "2", good, bad)
		if res.code != lang.ExitDiagnostics {
			t.Fatalf("Expected exit code 1, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "ok      "+good) || !strings.Contains(res.stdout, "FAIL    "+bad) {
			t.Errorf("Expected per-file status, got:\n%s", res.stdout)
		}
		if !strings.Contains(res.stderr, "error[E0101]") {
			t.Errorf("Expected rendered diagnostic, got:\n%s", res.stderr)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		res := execute(t, "check", good, bad, filepath.Join(dir, "missing.pe"))
		if res.code != lang.ExitError {
			t.Fatalf("Expected exit code 2, got %d", res.code)
		}
		if !strings.Contains(res.stdout, "1 unreadable") {
			t.Errorf("Expected unreadable count, got:\n%s", res.stdout)
		}
	})

	t.Run("directory", func(t *testing.T) {
		tree := t.TempDir()
		sub := filepath.Join(tree, "pkg")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		first := writeFile(t, tree, "a.pe", "int x = 1\n")
		second := writeFile(t, sub, "b.pe", "x = 2\n")
		writeFile(t, tree, "notes.txt", "not source\n")

		res := execute(t, "check", tree)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "ok      "+first) || !strings.Contains(res.stdout, "ok      "+second) {
			t.Errorf("Expected both source files, got:\n%s", res.stdout)
		}
		if !strings.Contains(res.stdout, "Checked 2 file(s)") {
			t.Errorf("Expected text files to be ignored, got:\n%s", res.stdout)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		res := execute(t, "check", t.TempDir())
		if res.code != lang.ExitError {
			t.Fatalf("Expected exit code 2, got %d", res.code)
		}
		if !strings.Contains(res.stderr, "no source files found") {
			t.Errorf("Expected error message, got %q", res.stderr)
		}
	})

	t.Run("negative workers", func(t *testing.T) {
		res := execute(t, "check", "--workers=-1", good)
		if res.code != lang.ExitError {
			t.Fatalf("Expected exit code 2, got %d", res.code)
		}
	})
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	// a tab lines up with eight spaces only when tabs are 8 wide
	src := writeFile(t, dir, "tabs.pe", "if a:\n\tb = 1\n        c = 2\n")

	t.Run("tab width from config", func(t *testing.T) {
		cfg := writeFile(t, dir, "peregrine.toml", "[lexer]\ntab_width = 8\n")
		res := execute(t, "--config", cfg, "tokens", src)
		if res.code != lang.ExitOK {
			t.Fatalf("Expected exit code 0, got %d: %s", res.code, res.stderr)
		}
		if strings.Count(res.stdout, "INDENT") != 1 {
			t.Errorf("Expected a single INDENT, got:\n%s", res.stdout)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := writeFile(t, dir, "broken.toml", "[lexer]\ntab_width = 0\n")
		res := execute(t, "--config", cfg, "tokens", src)
		if res.code != lang.ExitError {
			t.Fatalf("Expected exit code 2, got %d", res.code)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		res := execute(t, "--config", filepath.Join(dir, "none.toml"), "tokens", src)
		if res.code != lang.ExitError {
			t.Fatalf("Expected exit code 2, got %d", res.code)
		}
	})
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file argument", []string{"parse"}},
		{"unknown command", []string{"compile"}},
		{"unknown flag", []string{"parse", "--format", "json", "main.pe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.code != lang.ExitError {
				t.Errorf("Expected exit code 2, got %d", res.code)
			}
		})
	}
}

func TestBadColorFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.pe", "x = 1\n")
	res := execute(t, "--color", "sometimes", "parse", path)
	if res.code != lang.ExitError {
		t.Fatalf("Expected exit code 2, got %d", res.code)
	}
	if !strings.Contains(res.stderr, "invalid --color flag") {
		t.Errorf("Expected color error, got %q", res.stderr)
	}
}
