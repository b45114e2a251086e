// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import "errors"

var (
	// ErrUnknownHostPlatform is returned for a host platform that has no
	// entry in the linker configuration table. There is no safe default
	// to fall back to.
	ErrUnknownHostPlatform = errors.New("unknown host platform")

	// ErrCompilerNotFound is returned if the compiler executable cannot
	// be resolved on the search path.
	ErrCompilerNotFound = errors.New("compiler not found in PATH")
)

// BuildError wraps a failure of the external compile/link invocation. The
// underlying exit code is preserved, not reinterpreted.
type BuildError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *BuildError) Error() string {
	return "compile/link: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*BuildError) Is(other error) bool {
	_, ok := other.(*BuildError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *BuildError) Unwrap() error {
	return e.Err
}
