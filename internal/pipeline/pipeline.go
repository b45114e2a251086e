// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package pipeline orchestrates the build and run stages.
//
// The pipeline is strictly sequential: toolchain resolution, compile/link,
// package, and optionally run. Each stage consumes the filesystem artifact
// of its predecessor, so no stage starts before the previous one completed.
// Nothing is retried and no stage recovers silently; the first failure
// aborts the remaining stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bootforge/bootforge/internal/config"
	"github.com/bootforge/bootforge/internal/image"
	"github.com/bootforge/bootforge/internal/runner"
	"github.com/bootforge/bootforge/internal/target"
	"github.com/bootforge/bootforge/internal/toolchain"
)

// BuildSpec describes a single build: resolve the toolchain configuration,
// compile and link the kernel, package the bootable image.
type BuildSpec struct {
	// Dir is the project root.
	Dir string

	// Host is the build host platform, determined once by the caller.
	Host toolchain.HostPlatform

	// Config holds the project-level settings.
	Config config.Config

	// Release selects the release profile.
	Release bool

	// DistPath, if set, names a cpio archive to bundle the build
	// artifacts into after packaging.
	DistPath string
}

// Build runs the build pipeline and returns the path of the packaged
// bootable image.
//
// Runner availability is probed up front. An absent runner is only
// reported as a warning here: it blocks a later run, not the build.
func Build(ctx context.Context, spec BuildSpec, stdout, stderr io.Writer) (string, error) {
	linker, err := toolchain.ResolveLinkerConfig(spec.Host)
	if err != nil {
		return "", fmt.Errorf("toolchain resolution: %w", err)
	}

	if err := runner.Probe(spec.Config.Runner); err != nil {
		slog.Warn("VM runner unavailable, run-os will not work",
			slog.Any("error", err))
	}

	desc := target.New(spec.Config.Target)

	specPath, err := desc.WriteSpecFile(spec.Dir)
	if err != nil {
		return "", fmt.Errorf("toolchain resolution: %w", err)
	}

	buildSpec := toolchain.BuildSpec{
		Compiler:       spec.Config.Compiler,
		TargetSpecPath: specPath,
		Dir:            spec.Dir,
		Release:        spec.Release,
		Policy:         toolchain.RebuildPolicyForCustomTarget(),
		Linker:         linker,
	}

	slog.Debug("Compile/link stage",
		slog.String("target", desc.Name()),
		slog.Any("args", buildSpec.Arguments()),
		slog.Any("env", buildSpec.LinkerEnv()))

	err = toolchain.Build(ctx, buildSpec, stdout, stderr)
	if err != nil {
		return "", fmt.Errorf("link: %w", err)
	}

	packageSpec := image.PackageSpec{
		Packager:       spec.Config.Packager,
		Dir:            spec.Dir,
		TargetSpecPath: specPath,
		TargetName:     desc.Name(),
		Binary:         spec.Config.Binary,
		Release:        spec.Release,
	}

	imagePath, err := image.Package(ctx, packageSpec, stdout, stderr)
	if err != nil {
		return "", fmt.Errorf("package: %w", err)
	}

	slog.Debug("Packaged bootable image", slog.String("path", imagePath))

	if spec.DistPath != "" {
		bundle := image.DistBundle{
			Kernel: image.KernelPath(
				spec.Dir, desc.Name(), spec.Config.Binary, spec.Release,
			),
			Image:      imagePath,
			TargetSpec: specPath,
		}

		err = bundle.WriteFile(spec.DistPath)
		if err != nil {
			return "", fmt.Errorf("dist bundle: %w", err)
		}

		slog.Debug("Wrote dist bundle", slog.String("path", spec.DistPath))
	}

	return imagePath, nil
}

// RunSpec describes a single run of a previously packaged image.
type RunSpec struct {
	// Dir is the project root.
	Dir string

	// Config holds the project-level settings.
	Config config.Config

	// Release selects the release profile's image.
	Release bool

	// TestMode boots the image with the guest test harness devices.
	TestMode bool
}

// Run boots the packaged image of the given build profile.
//
// It requires a previous successful build: a missing image is a
// precondition violation and does not trigger a build. A missing runner is
// fatal here.
func Run(
	ctx context.Context,
	spec RunSpec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	desc := target.New(spec.Config.Target)

	imagePath := image.OutputPath(
		spec.Dir, desc.Name(), spec.Config.Binary, spec.Release,
	)
	if _, err := os.Stat(imagePath); err != nil {
		return fmt.Errorf("run: %w: %s", image.ErrImageMissing, imagePath)
	}

	if err := runner.Probe(spec.Config.Runner); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	cmdSpec := runner.CommandSpec{
		Executable: spec.Config.Runner,
		Image:      imagePath,
		Memory:     spec.Config.Memory,
		TestMode:   spec.TestMode,
		ExtraArgs:  parseRunnerArgs(spec.Config.RunnerArgs),
	}

	cmd, err := runner.NewCommand(cmdSpec)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	slog.Debug("Runner command", slog.String("command", cmd.String()))

	err = cmd.Run(ctx, stdin, stdout, stderr)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

// parseRunnerArgs turns configured runner argument entries of the form
// "name" or "name value" into [runner.Argument]s.
func parseRunnerArgs(entries []string) []runner.Argument {
	args := make([]runner.Argument, 0, len(entries))

	for _, entry := range entries {
		name, value, _ := strings.Cut(entry, " ")
		args = append(args, runner.RepeatableArg(name, value))
	}

	return args
}
