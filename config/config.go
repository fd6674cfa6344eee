// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional gc-utils configuration: a YAML file
// with defaults for unit, output format and wordlist path, overridden by
// GC_UTILS_* environment variables (including those from a local .env).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the toolkit-wide defaults. Command-line flags take
// precedence over everything here.
type Config struct {
	// Unit is the default distance unit: km, mi or nm.
	Unit string `yaml:"unit"`
	// Format is the default coordinate output notation: decimal, ddm or dms.
	Format string `yaml:"format"`
	// Wordlist is the default wordlist path for anagram search.
	Wordlist string `yaml:"wordlist"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/gc-utils/config.yaml falling back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, "gc-utils", "config.yaml")
}

// Load reads the config file at path (a missing file is not an error) and
// applies environment overrides on top: GC_UTILS_UNIT, GC_UTILS_FORMAT
// and GC_UTILS_WORDLIST. A .env file in the working directory is loaded
// first, so it participates in the overrides without clobbering variables
// already set in the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Unit:   "km",
		Format: "decimal",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file; defaults apply.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	// godotenv does not overwrite variables already exported, which keeps
	// the precedence: process env > .env > file > defaults.
	_ = godotenv.Load()

	if v := os.Getenv("GC_UTILS_UNIT"); v != "" {
		cfg.Unit = v
	}

	if v := os.Getenv("GC_UTILS_FORMAT"); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv("GC_UTILS_WORDLIST"); v != "" {
		cfg.Wordlist = v
	}

	return cfg, nil
}
