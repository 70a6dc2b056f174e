// File: discovery.go
// Title: Configuration File Discovery
// Description: Looks for peregrine.toml / .yaml / .yml in the usual places
//              and falls back to defaults plus environment overrides when
//              none exists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pgerror "github.com/msto63/peregrine/internal/core/error"
)

// DiscoveryOptions defines where to search for configuration files
type DiscoveryOptions struct {
	Paths      []string // directories to search
	Filenames  []string // base names without extension
	Extensions []string // extensions to try, in order
	EnvPrefix  string   // environment override prefix
	Required   bool     // fail if no file was found
}

// DefaultDiscoveryOptions returns the standard search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config"},
		Filenames:  []string{"peregrine"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover finds and loads the first configuration file. Without a file it
// returns validated defaults, unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		cfg, loadErr := LoadWithOptions(path, LoadOptions{EnvPrefix: options.EnvPrefix})
		if loadErr != nil {
			return nil, pgerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.Discover").
				WithDetail("path", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, pgerror.New(fmt.Sprintf("no configuration file found in: %s",
			strings.Join(ListPossibleConfigFiles(options), ", "))).
			WithCode(pgerror.CodeMissingConfig).
			WithOperation("config.Discover")
	}

	cfg := Default()
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

// FindConfigFile returns the first existing configuration file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", pgerror.New("configuration file not found").
		WithCode(pgerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
