// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

// Exit codes the guest's test harness writes to the test exit device.
// Success is deliberately not 0: the encoded runner exit code must never
// collide with the runner's own generic failure code 1.
const (
	TestExitSuccess = 0x10
	TestExitFailed  = 0x11
)

// DecodeTestExit maps the runner's process exit code back to the code the
// guest wrote to the test exit device. The device encodes a written code n
// as runner exit code (n << 1) | 1.
//
// It reports false if the exit code cannot stem from the device, which
// means the guest never signaled and the runner exited on its own.
func DecodeTestExit(rc int) (int, bool) {
	// Even codes and code 1 are the runner's own. 1 would decode to a
	// guest code of 0, which the device cannot produce distinguishably.
	if rc <= 1 || rc&1 == 0 {
		return 0, false
	}

	return rc >> 1, true
}
