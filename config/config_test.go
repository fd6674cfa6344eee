// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the override variables so ambient environment does not
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GC_UTILS_UNIT", "")
	t.Setenv("GC_UTILS_FORMAT", "")
	t.Setenv("GC_UTILS_WORDLIST", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "km", cfg.Unit)
	assert.Equal(t, "decimal", cfg.Format)
	assert.Empty(t, cfg.Wordlist)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: mi\nformat: ddm\nwordlist: /usr/share/dict/words\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mi", cfg.Unit)
	assert.Equal(t, "ddm", cfg.Format)
	assert.Equal(t, "/usr/share/dict/words", cfg.Wordlist)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: mi\n"), 0o600))

	t.Setenv("GC_UTILS_UNIT", "nm")
	t.Setenv("GC_UTILS_FORMAT", "dms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nm", cfg.Unit)
	assert.Equal(t, "dms", cfg.Format)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "km", cfg.Unit)
}
