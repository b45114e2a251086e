// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import "errors"

var (
	// ErrRunnerNotFound is returned if the VM runner executable cannot
	// be resolved on the search path. A warning for builds, fatal for
	// runs.
	ErrRunnerNotFound = errors.New("VM runner not found in PATH")

	// ErrArgumentCollision is returned if two [Argument]s collide.
	ErrArgumentCollision = errors.New("colliding arguments")

	// ErrGuestTestFailure is returned in test harness mode if the guest
	// reported a test exit code other than success.
	ErrGuestTestFailure = errors.New("guest reported test failure")

	// ErrGuestNoTestExit is returned in test harness mode if the runner
	// exited without the guest having written the test exit device.
	ErrGuestNoTestExit = errors.New("guest did not signal a test exit code")
)

// ExitError carries the runner's own exit code through to the caller
// unchanged. A non-zero code from an emulator often reflects the guest
// kernel's behavior, not a pipeline defect, so it is never reinterpreted.
type ExitError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *ExitError) Error() string {
	return "run: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ExitError) Is(other error) bool {
	_, ok := other.(*ExitError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExitError) Unwrap() error {
	return e.Err
}
