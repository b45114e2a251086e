// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bootforge/bootforge/internal/image"
	"github.com/bootforge/bootforge/internal/runner"
	"github.com/bootforge/bootforge/internal/toolchain"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "runner exit code passed through",
			err:      &runner.ExitError{Err: errors.New("x"), ExitCode: 33},
			expected: 33,
		},
		{
			name: "wrapped runner exit code",
			err: fmt.Errorf(
				"run: %w",
				&runner.ExitError{Err: errors.New("x"), ExitCode: 2},
			),
			expected: 2,
		},
		{
			name: "compiler exit code",
			err: &toolchain.BuildError{
				Err: errors.New("x"), ExitCode: 101,
			},
			expected: 101,
		},
		{
			name: "packager exit code",
			err: &image.PackageError{
				Err: errors.New("x"), ExitCode: 3,
			},
			expected: 3,
		},
		{
			name:     "plain error",
			err:      errors.New("x"),
			expected: 1,
		},
		{
			name:     "missing tool",
			err:      runner.ErrRunnerNotFound,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeFor(tt.err))
		})
	}
}
