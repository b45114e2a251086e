// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package runner

// KVMAvailable reports whether the current process may use KVM
// acceleration. KVM is Linux only.
func KVMAvailable() bool {
	return false
}
