// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import "slices"

// Runtime support crates that must be rebuilt from source for a custom
// target. Prebuilt artifacts exist only for the standard targets; skipping
// the rebuild fails late with unresolved symbols at link time instead of
// failing early as a configuration error.
const (
	CrateCore             = "core"
	CrateCompilerBuiltins = "compiler_builtins"
	CrateAlloc            = "alloc"

	// Feature enabling the memory intrinsics (memset, memcpy, memcmp)
	// in compiler_builtins. A freestanding binary has no libc to
	// provide them.
	FeatureBuiltinsMem = "compiler-builtins-mem"
)

// RuntimeRebuildPolicy is the set of runtime support crates to compile from
// source, with the features they need. The set is fixed for the lifetime of
// a target descriptor. Changing the descriptor invalidates any cached
// rebuilt artifacts.
type RuntimeRebuildPolicy struct {
	crates   []string
	features []string
}

// RebuildPolicyForCustomTarget returns the rebuild policy for a custom
// target. It is a pure mapping: any custom target gets the same fixed
// three-crate policy.
func RebuildPolicyForCustomTarget() RuntimeRebuildPolicy {
	return RuntimeRebuildPolicy{
		crates: []string{
			CrateCore,
			CrateCompilerBuiltins,
			CrateAlloc,
		},
		features: []string{
			FeatureBuiltinsMem,
		},
	}
}

// Crates returns the crate names in lexical order.
func (p RuntimeRebuildPolicy) Crates() []string {
	crates := slices.Clone(p.crates)
	slices.Sort(crates)

	return crates
}

// Features returns the crate features in lexical order.
func (p RuntimeRebuildPolicy) Features() []string {
	features := slices.Clone(p.features)
	slices.Sort(features)

	return features
}

// Contains reports whether the policy requires the given crate.
func (p RuntimeRebuildPolicy) Contains(crate string) bool {
	return slices.Contains(p.crates, crate)
}
