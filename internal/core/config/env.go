// File: env.go
// Title: Environment Overrides
// Description: Applies PEREGRINE_* environment variables on top of a loaded
//              configuration. Variable names follow the key path, e.g.
//              PEREGRINE_LEXER_TAB_WIDTH for lexer.tab_width.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package config

import (
	"os"
	"strconv"
	"strings"

	pgerror "github.com/msto63/peregrine/internal/core/error"
)

// EnvPrefix is the prefix of all environment overrides
const EnvPrefix = "PEREGRINE"

type envBinding struct {
	key    string
	setInt func(*Config, int)
	setStr func(*Config, string)
}

var envBindings = []envBinding{
	{key: "lexer.tab_width", setInt: func(c *Config, v int) { c.Lexer.TabWidth = v }},
	{key: "diagnostics.color", setStr: func(c *Config, v string) { c.Diagnostics.Color = v }},
	{key: "diagnostics.limit", setInt: func(c *Config, v int) { c.Diagnostics.Limit = v }},
	{key: "log.level", setStr: func(c *Config, v string) { c.Log.Level = v }},
	{key: "log.format", setStr: func(c *Config, v string) { c.Log.Format = v }},
	{key: "check.workers", setInt: func(c *Config, v int) { c.Check.Workers = v }},
}

// EnvKey converts a key path into its environment variable name
func EnvKey(prefix, key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// ApplyEnv overrides values from environment variables with the given prefix
func (c *Config) ApplyEnv(prefix string) error {
	for _, b := range envBindings {
		name := EnvKey(prefix, b.key)
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)

		if b.setStr != nil {
			b.setStr(c, raw)
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return pgerror.Wrap(err, "environment override is not an integer").
				WithCode(pgerror.CodeInvalidConfig).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", name)
		}
		b.setInt(c, n)
	}
	return nil
}
