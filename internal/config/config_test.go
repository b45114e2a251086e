// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootforge/bootforge/internal/config"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad(t *testing.T) {
	content := `
binary: myos
target: x86_64-myos
runner: qemu-system-x86_64-custom
memory: 256
runner_args:
  - no-reboot
  - cpu max
`

	path := filepath.Join(t.TempDir(), "bootforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myos", cfg.Binary)
	assert.Equal(t, "x86_64-myos", cfg.Target)
	assert.Equal(t, "qemu-system-x86_64-custom", cfg.Runner)
	assert.Equal(t, uint64(256), cfg.Memory)
	assert.Equal(t, []string{"no-reboot", "cpu max"}, cfg.RunnerArgs)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bootforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory: 64\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.Default().Binary, cfg.Binary)
	assert.Equal(t, uint64(64), cfg.Memory)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bootforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("binary: [\n"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
