// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package image invokes the external bootable-image packager and derives
// the deterministic artifact paths a build produces.
//
// There is exactly one packaged image per build profile. A new build
// overwrites the previous image, there is no versioning or rotation.
package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultPackager is the external tool that turns a kernel binary into a
// bootable disk image.
const DefaultPackager = "bootimage"

// Profile directory names used by the compiler's build layout.
const (
	profileDebug   = "debug"
	profileRelease = "release"
)

// PackageSpec defines a single invocation of the image packager. Built
// immediately before the invocation, executed synchronously at most once
// per build, discarded after.
type PackageSpec struct {
	// Packager executable. Defaults to [DefaultPackager] if empty.
	Packager string

	// Dir is the project root the packager runs in.
	Dir string

	// TargetSpecPath is the path to the custom target descriptor file.
	TargetSpecPath string

	// TargetName is the stable target identifier, naming the build
	// output directory.
	TargetName string

	// Binary is the name of the kernel binary to package.
	Binary string

	// Release selects the release profile instead of the dev profile.
	Release bool
}

func profileDir(release bool) string {
	if release {
		return profileRelease
	}

	return profileDebug
}

// KernelPath returns the deterministic path of the linked kernel binary for
// the given build parameters.
func KernelPath(dir, targetName, binary string, release bool) string {
	return filepath.Join(
		dir, "target", targetName, profileDir(release), binary,
	)
}

// OutputPath returns the deterministic path of the packaged bootable image
// for the given build parameters. It is derived from the binary name and
// the build profile only, so a follow-up run finds the image without any
// shared state.
func OutputPath(dir, targetName, binary string, release bool) string {
	return filepath.Join(
		dir, "target", targetName, profileDir(release),
		"bootimage-"+binary+".bin",
	)
}

// Package invokes the image packager for the kernel binary described by the
// spec and returns the path of the packaged image.
//
// The packager must be resolvable on the search path and the kernel binary
// must exist. Both are checked up front so the two failure modes stay
// distinguishable from a packaging failure.
func Package(
	ctx context.Context,
	spec PackageSpec,
	stdout, stderr io.Writer,
) (string, error) {
	packager := spec.Packager
	if packager == "" {
		packager = DefaultPackager
	}

	path, err := exec.LookPath(packager)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrPackagerNotFound, packager)
	}

	kernel := KernelPath(spec.Dir, spec.TargetName, spec.Binary, spec.Release)
	if _, err := os.Stat(kernel); err != nil {
		return "", fmt.Errorf("%w: %s", ErrKernelBinaryMissing, kernel)
	}

	args := []string{"build", "--target", spec.TargetSpecPath}
	if spec.Release {
		args = append(args, "--release")
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		pkgErr := &PackageError{Err: err, ExitCode: -1}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			pkgErr.ExitCode = exitErr.ExitCode()
		}

		return "", pkgErr
	}

	out := OutputPath(spec.Dir, spec.TargetName, spec.Binary, spec.Release)
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("%w: %s", ErrImageNotCreated, out)
	}

	return out, nil
}
