// File: config.go
// Title: Front End Configuration
// Description: Typed configuration for the tokenizer, the diagnostics
//              renderer, logging and the multi-file checker. Files are TOML
//              or YAML, detected by extension; unknown keys are rejected so
//              that typos surface instead of being ignored.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with TOML and YAML support
// - 2026-10-13 v0.1.0: Strict decoding and environment overrides

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pgerror "github.com/msto63/peregrine/internal/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	// FormatTOML represents TOML format
	FormatTOML
	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Config is the root configuration of the front end
type Config struct {
	Lexer       LexerConfig       `toml:"lexer" yaml:"lexer"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Log         LogConfig         `toml:"log" yaml:"log"`
	Check       CheckConfig       `toml:"check" yaml:"check"`

	// path of the file the values came from; empty for defaults
	source string
}

// LexerConfig holds tokenizer settings
type LexerConfig struct {
	TabWidth int `toml:"tab_width" yaml:"tab_width"`
}

// DiagnosticsConfig holds diagnostic rendering settings
type DiagnosticsConfig struct {
	Color string `toml:"color" yaml:"color"`
	Limit int    `toml:"limit" yaml:"limit"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// CheckConfig holds settings of the multi-file checker
type CheckConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
}

// Defaults
const (
	DefaultTabWidth  = 4
	DefaultColor     = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "auto"
)

// Default returns a configuration with all defaults applied
func Default() *Config {
	return &Config{
		Lexer:       LexerConfig{TabWidth: DefaultTabWidth},
		Diagnostics: DiagnosticsConfig{Color: DefaultColor},
		Log:         LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Source returns the path the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// Load reads a configuration file, applies environment overrides and
// validates the result
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{EnvPrefix: EnvPrefix})
}

// LoadOptions controls how a file is loaded
type LoadOptions struct {
	Format    Format
	EnvPrefix string // empty disables environment overrides
}

// LoadWithOptions reads a configuration file with explicit options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		code := pgerror.CodeReadFailed
		if os.IsNotExist(err) {
			code = pgerror.CodeNotFound
		}
		return nil, pgerror.Wrap(err, "failed to read configuration file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := LoadFromString(string(content), format)
	if err != nil {
		if e, ok := err.(*pgerror.Error); ok {
			e.WithDetail("path", filePath)
		}
		return nil, err
	}
	cfg.source = filePath

	if options.EnvPrefix != "" {
		if err := cfg.ApplyEnv(options.EnvPrefix); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString decodes configuration content on top of the defaults.
// The result is not validated.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		if strings.TrimSpace(content) == "" {
			return cfg, nil
		}
		dec := yaml.NewDecoder(bytes.NewBufferString(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, pgerror.Wrap(err, "failed to parse YAML configuration").
				WithCode(pgerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}

	default:
		meta, err := toml.Decode(content, cfg)
		if err != nil {
			return nil, pgerror.Wrap(err, "failed to parse TOML configuration").
				WithCode(pgerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, pgerror.New(fmt.Sprintf("unknown configuration keys: %s", strings.Join(keys, ", "))).
				WithCode(pgerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString").
				WithDetail("keys", keys)
		}
	}

	return cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// String renders the effective configuration as TOML
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config(%v)", err)
	}
	return buf.String()
}
