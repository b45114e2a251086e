// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import "errors"

var (
	// ErrPackagerNotFound is returned if the image packaging tool cannot
	// be resolved on the search path. This is distinct from a compile
	// failure: the build produced a binary, only the packaging
	// environment is incomplete.
	ErrPackagerNotFound = errors.New("image packager not found in PATH")

	// ErrKernelBinaryMissing is returned if the kernel binary the
	// packager should wrap does not exist. Precondition violation, not
	// retried.
	ErrKernelBinaryMissing = errors.New("kernel binary does not exist")

	// ErrImageNotCreated is returned if the packager exited successfully
	// but the expected image file is absent.
	ErrImageNotCreated = errors.New("packager did not create image")

	// ErrImageMissing is returned if a run is requested without a
	// previously packaged image at the expected path.
	ErrImageMissing = errors.New("no packaged image found, build first")
)

// PackageError wraps a failure of the external packager invocation. The
// packager's exit status is preserved.
type PackageError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *PackageError) Error() string {
	return "package: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*PackageError) Is(other error) bool {
	_, ok := other.(*PackageError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *PackageError) Unwrap() error {
	return e.Err
}
