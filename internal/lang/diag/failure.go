// File: failure.go
// Title: Failed Runs
// Description: Failure is the error returned when a run produced
//              diagnostics. It carries them in report order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

import (
	"errors"
	"fmt"
)

// Failure reports a run that produced diagnostics
type Failure struct {
	Filename    string
	Diagnostics []Diagnostic
	Suppressed  int
}

// Error summarises the failure with its first diagnostic
func (f *Failure) Error() string {
	total := f.Count()
	noun := "diagnostics"
	if total == 1 {
		noun = "diagnostic"
	}
	if len(f.Diagnostics) == 0 {
		return fmt.Sprintf("%s: %d %s", f.name(), total, noun)
	}
	return fmt.Sprintf("%s: %d %s, first: %s", f.name(), total, noun, f.Diagnostics[0])
}

func (f *Failure) name() string {
	if f.Filename == "" {
		return "<input>"
	}
	return f.Filename
}

// Count returns the number of reported diagnostics including suppressed ones
func (f *Failure) Count() int {
	return len(f.Diagnostics) + f.Suppressed
}

// Codes returns the codes of the kept diagnostics in order
func (f *Failure) Codes() []Code {
	codes := make([]Code, len(f.Diagnostics))
	for i, d := range f.Diagnostics {
		codes[i] = d.Code
	}
	return codes
}

// HasClass reports whether any kept diagnostic has the given class
func (f *Failure) HasClass(class Class) bool {
	for _, d := range f.Diagnostics {
		if d.Class == class {
			return true
		}
	}
	return false
}

// AsFailure extracts a Failure from err
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
