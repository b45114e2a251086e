// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package runner invokes the external virtual-machine runner with a
// packaged bootable disk image.
//
// Availability of the runner is probed before use. An unavailable runner
// blocks only the run step, never the build. The runner's exit code is
// surfaced verbatim, except in test harness mode where it carries the
// guest's encoded test result.
package runner
