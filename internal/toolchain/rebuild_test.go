// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bootforge/bootforge/internal/toolchain"
)

func TestRebuildPolicyForCustomTarget(t *testing.T) {
	expected := []string{"alloc", "compiler_builtins", "core"}

	policy := toolchain.RebuildPolicyForCustomTarget()
	assert.Equal(t, expected, policy.Crates())

	// Idempotent: repeated resolution yields the identical policy.
	assert.Equal(t, policy, toolchain.RebuildPolicyForCustomTarget())
	assert.Equal(t, expected, policy.Crates())

	assert.Equal(t, []string{"compiler-builtins-mem"}, policy.Features())

	for _, crate := range expected {
		assert.True(t, policy.Contains(crate), crate)
	}

	assert.False(t, policy.Contains("std"))
}
