// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "source file is empty"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("permission denied"),
			message:  "failed to read source",
			wantMsg:  "failed to read source: permission denied",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error keeps code",
			err:      New("bad tab width").WithCode(CodeInvalidConfig),
			message:  "failed to load config",
			wantMsg:  "failed to load config: bad tab width",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if !strings.Contains(e.Error(), "chain truncated") {
		t.Errorf("Expected truncated chain message, got %q", e.Error())
	}
	if e.Details()["truncated"] != true {
		t.Error("Expected truncated detail to be set")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeInvalidConfig, SeverityHigh},
		{CodeSyntaxError, SeverityLow},
		{CodeCanceled, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntaxError)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("unterminated string").WithCode(CodeLexicalError)
	outer := fmt.Errorf("run failed: %w", inner)

	if !HasCode(outer, CodeLexicalError) {
		t.Error("HasCode() should find code through fmt wrapping")
	}
	if HasCode(outer, CodeSyntaxError) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if got := GetCode(outer); got != CodeLexicalError {
		t.Errorf("GetCode() = %v, want %v", got, CodeLexicalError)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityMedium)
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("config file not found").
		WithCode(CodeNotFound).
		WithOperation("config.Load").
		WithDetail("path", "peregrine.toml").
		WithDetails(map[string]interface{}{"format": "toml"})

	details := err.Details()
	details["path"] = "mutated"
	if err.Details()["path"] != "peregrine.toml" {
		t.Error("Details() should return a copy")
	}

	s := err.String()
	for _, want := range []string{"Code: NOT_FOUND", "Operation: config.Load", "format=toml", "path=peregrine.toml"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read failed").
		WithCode(CodeReadFailed).
		WithOperation("lang.ParseFile")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}

	if decoded["code"] != string(CodeReadFailed) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeReadFailed)
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
}

func TestCodeIsFrontEnd(t *testing.T) {
	if !CodeSyntaxError.IsFrontEnd() || !CodeLexicalError.IsFrontEnd() {
		t.Error("diagnostic codes should be front-end codes")
	}
	if CodeReadFailed.IsFrontEnd() {
		t.Error("READ_FAILED is not a front-end code")
	}
}
