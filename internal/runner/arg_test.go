// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootforge/bootforge/internal/runner"
)

func TestArgumentString(t *testing.T) {
	assert.Equal(
		t,
		"-drive format=raw,file=os.bin",
		runner.RepeatableArg("drive", "format=raw", "file=os.bin").String(),
	)
	assert.Equal(t, "-enable-kvm", runner.UniqueArg("enable-kvm").String())
}

func TestCommandArgumentCollision(t *testing.T) {
	tests := []struct {
		name        string
		extraArgs   []runner.Argument
		expectedErr error
	}{
		{
			name: "distinct",
			extraArgs: []runner.Argument{
				runner.UniqueArg("no-reboot"),
				runner.RepeatableArg("device", "isa-debug-exit"),
			},
		},
		{
			name: "repeatable same name different value",
			extraArgs: []runner.Argument{
				runner.RepeatableArg("serial", "stdio"),
				runner.RepeatableArg("serial", "null"),
			},
		},
		{
			name: "unique name repeated",
			extraArgs: []runner.Argument{
				runner.UniqueArg("display", "none"),
				runner.UniqueArg("display", "gtk"),
			},
			expectedErr: runner.ErrArgumentCollision,
		},
		{
			name: "repeatable exact duplicate",
			extraArgs: []runner.Argument{
				runner.RepeatableArg("serial", "stdio"),
				runner.RepeatableArg("serial", "stdio"),
			},
			expectedErr: runner.ErrArgumentCollision,
		},
		{
			name: "collides with essential drive argument",
			extraArgs: []runner.Argument{
				runner.RepeatableArg("drive", "format=raw", "file=os.bin"),
			},
			expectedErr: runner.ErrArgumentCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := runner.CommandSpec{
				Image:     "os.bin",
				NoKVM:     true,
				ExtraArgs: tt.extraArgs,
			}

			_, err := runner.NewCommand(spec)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
