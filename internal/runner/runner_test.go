// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootforge/bootforge/internal/runner"
)

func writeRunner(t *testing.T, dir, name, script string) {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755)
	require.NoError(t, err)
}

func TestCommandString(t *testing.T) {
	spec := runner.CommandSpec{
		Image:  "bootimage-kernel.bin",
		Memory: 128,
		NoKVM:  true,
	}

	cmd, err := runner.NewCommand(spec)
	require.NoError(t, err)

	s := cmd.String()
	assert.Contains(t, s, "qemu-system-x86_64")
	assert.Contains(t, s, "-drive format=raw,file=bootimage-kernel.bin")
	assert.Contains(t, s, "-m 128")
	assert.NotContains(t, s, "enable-kvm")
	assert.NotContains(t, s, "isa-debug-exit")
}

func TestCommandStringTestMode(t *testing.T) {
	spec := runner.CommandSpec{
		Image:    "os.bin",
		NoKVM:    true,
		TestMode: true,
	}

	cmd, err := runner.NewCommand(spec)
	require.NoError(t, err)

	s := cmd.String()
	assert.Contains(t, s, "-device isa-debug-exit,iobase=0xf4,iosize=0x04")
	assert.Contains(t, s, "-serial stdio")
	assert.Contains(t, s, "-display none")
}

func TestProbe(t *testing.T) {
	binDir := t.TempDir()
	writeRunner(t, binDir, "qemu-system-x86_64", "exit 0\n")
	t.Setenv("PATH", binDir)

	require.NoError(t, runner.Probe(""))
	require.ErrorIs(t, runner.Probe("other-vmm"), runner.ErrRunnerNotFound)
}

func TestCommandRun(t *testing.T) {
	tests := []struct {
		name             string
		script           string
		testMode         bool
		expectedErr      error
		expectedExitCode int
		expectedStdout   string
	}{
		{
			name:           "clean exit",
			script:         "echo booting\nexit 0\n",
			expectedStdout: "booting\n",
		},
		{
			name:             "exit code passed through verbatim",
			script:           "exit 7\n",
			expectedErr:      &runner.ExitError{},
			expectedExitCode: 7,
		},
		{
			name:     "test success",
			script:   "exit 33\n",
			testMode: true,
		},
		{
			name:             "test failure",
			script:           "exit 35\n",
			testMode:         true,
			expectedErr:      runner.ErrGuestTestFailure,
			expectedExitCode: runner.TestExitFailed,
		},
		{
			name:        "test without device exit",
			script:      "exit 0\n",
			testMode:    true,
			expectedErr: runner.ErrGuestNoTestExit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binDir := t.TempDir()
			writeRunner(t, binDir, "fake-vmm", tt.script)
			t.Setenv("PATH", binDir)

			cmd, err := runner.NewCommand(runner.CommandSpec{
				Executable: "fake-vmm",
				Image:      "os.bin",
				NoKVM:      true,
				TestMode:   tt.testMode,
			})
			require.NoError(t, err)

			var stdout, stderr strings.Builder

			err = cmd.Run(context.Background(), nil, &stdout, &stderr)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				var exitErr *runner.ExitError
				if tt.expectedExitCode != 0 {
					require.ErrorAs(t, err, &exitErr)
					assert.Equal(
						t, tt.expectedExitCode, exitErr.ExitCode,
					)
				}
			}

			assert.Equal(t, tt.expectedStdout, stdout.String())
		})
	}
}

func TestCommandRunRunnerMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	cmd, err := runner.NewCommand(runner.CommandSpec{
		Executable: "fake-vmm",
		Image:      "os.bin",
		NoKVM:      true,
	})
	require.NoError(t, err)

	err = cmd.Run(context.Background(), nil, nil, nil)
	require.ErrorIs(t, err, runner.ErrRunnerNotFound)
}
