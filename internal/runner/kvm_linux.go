// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package runner

import "golang.org/x/sys/unix"

// KVMAvailable reports whether the current process may use KVM
// acceleration.
func KVMAvailable() bool {
	return unix.Access("/dev/kvm", unix.W_OK) == nil
}
