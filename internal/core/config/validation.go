// File: validation.go
// Title: Configuration Validation
// Description: Range and enum checks for all configuration values. The
//              first violation is returned as an INVALID_CONFIG error that
//              names the offending key.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package config

import (
	"fmt"

	pgerror "github.com/msto63/peregrine/internal/core/error"
	"github.com/msto63/peregrine/internal/core/log"
)

// MaxTabWidth bounds lexer.tab_width
const MaxTabWidth = 16

// ColorModes lists the accepted values of diagnostics.color
var ColorModes = []string{"auto", "always", "never"}

// Validate checks all values and returns the first violation
func (c *Config) Validate() error {
	if c.Lexer.TabWidth < 1 || c.Lexer.TabWidth > MaxTabWidth {
		return invalid("lexer.tab_width", c.Lexer.TabWidth,
			fmt.Sprintf("must be between 1 and %d", MaxTabWidth))
	}

	if !contains(ColorModes, c.Diagnostics.Color) {
		return invalid("diagnostics.color", c.Diagnostics.Color, "must be one of auto, always, never")
	}

	if c.Diagnostics.Limit < 0 {
		return invalid("diagnostics.limit", c.Diagnostics.Limit, "must not be negative")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "must be one of trace, debug, info, warn, error, fatal")
	}

	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, "must be one of auto, json, text, console, logfmt")
	}

	if c.Check.Workers < 0 {
		return invalid("check.workers", c.Check.Workers, "must not be negative")
	}

	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return pgerror.New(fmt.Sprintf("invalid value %v for %s: %s", value, key, reason)).
		WithCode(pgerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
