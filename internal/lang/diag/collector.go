// File: collector.go
// Title: Diagnostic Collector
// Description: Per-run sink for diagnostics. The tokenizer and parser
//              report into it; the run owner drains it once at the end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package diag

// Collector accumulates diagnostics in report order. It is owned by a
// single run and not safe for concurrent use.
type Collector struct {
	diagnostics []Diagnostic
	limit       int
	suppressed  int
	halted      bool
}

// NewCollector creates a collector keeping at most limit diagnostics;
// limit 0 keeps all
func NewCollector(limit int) *Collector {
	if limit < 0 {
		limit = 0
	}
	return &Collector{limit: limit}
}

// Report records d. A fatal diagnostic halts the collector.
func (c *Collector) Report(d Diagnostic) {
	if d.IsFatal() {
		c.halted = true
	}
	if c.limit > 0 && len(c.diagnostics) >= c.limit {
		c.suppressed++
		return
	}
	c.diagnostics = append(c.diagnostics, d)
}

// Len returns the number of kept diagnostics
func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// Suppressed returns how many diagnostics were dropped by the limit
func (c *Collector) Suppressed() int {
	return c.suppressed
}

// HasErrors reports whether anything was reported
func (c *Collector) HasErrors() bool {
	return len(c.diagnostics) > 0 || c.suppressed > 0
}

// Halted reports whether a fatal diagnostic was reported
func (c *Collector) Halted() bool {
	return c.halted
}

// Diagnostics returns a copy of the kept diagnostics
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Drain returns the kept diagnostics and resets the collector
func (c *Collector) Drain() []Diagnostic {
	out := c.diagnostics
	c.diagnostics = nil
	c.suppressed = 0
	c.halted = false
	return out
}

// Failure drains the collector into a Failure for filename. It returns nil
// when nothing was reported.
func (c *Collector) Failure(filename string) *Failure {
	if !c.HasErrors() {
		return nil
	}
	suppressed := c.suppressed
	return &Failure{
		Filename:    filename,
		Diagnostics: c.Drain(),
		Suppressed:  suppressed,
	}
}
