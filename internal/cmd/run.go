// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/bootforge/bootforge/internal/image"
	"github.com/bootforge/bootforge/internal/runner"
	"github.com/bootforge/bootforge/internal/toolchain"
)

// Run is the main entry point for the CLI. It returns the process exit
// code: 0 on success, otherwise the exit code propagated from whichever
// external tool failed first, or 1 for this tool's own failures.
func Run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) int {
	// Route early failures, before the debug flag is known, to the
	// right stream.
	setupLogging(stderr, false)

	cli := New(stdin, stdout, stderr)

	err := cli.Execute(ctx, args)
	if err == nil {
		return 0
	}

	slog.Error(err.Error())

	return exitCodeFor(err)
}

// exitCodeFor maps an error to the process exit code. External tool exit
// codes pass through unchanged.
func exitCodeFor(err error) int {
	var runnerErr *runner.ExitError
	if errors.As(err, &runnerErr) && runnerErr.ExitCode > 0 {
		return runnerErr.ExitCode
	}

	var buildErr *toolchain.BuildError
	if errors.As(err, &buildErr) && buildErr.ExitCode > 0 {
		return buildErr.ExitCode
	}

	var pkgErr *image.PackageError
	if errors.As(err, &pkgErr) && pkgErr.ExitCode > 0 {
		return pkgErr.ExitCode
	}

	return 1
}
