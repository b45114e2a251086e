// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultCompiler is the compiler driver invoked for the compile/link stage.
const DefaultCompiler = "cargo"

// BuildSpec defines a single compile/link invocation of the external
// compiler. It is constructed right before the invocation and discarded
// after.
type BuildSpec struct {
	// Compiler executable. Defaults to [DefaultCompiler] if empty.
	Compiler string

	// TargetSpecPath is the path to the custom target descriptor file.
	TargetSpecPath string

	// Dir is the project root the compiler runs in.
	Dir string

	// Release selects the release profile instead of the dev profile.
	Release bool

	// Policy names the runtime support crates rebuilt from source.
	Policy RuntimeRebuildPolicy

	// Linker is the resolved linker configuration for the build host.
	Linker LinkerConfig
}

// Arguments compiles the argument list for the compiler invocation.
func (s *BuildSpec) Arguments() []string {
	args := []string{
		"build",
		"--target", s.TargetSpecPath,
		"-Zbuild-std=" + strings.Join(s.Policy.Crates(), ","),
	}

	if features := s.Policy.Features(); len(features) > 0 {
		args = append(
			args,
			"-Zbuild-std-features="+strings.Join(features, ","),
		)
	}

	if s.Release {
		args = append(args, "--release")
	}

	return args
}

// LinkerEnv returns the environment entries carrying the resolved linker
// arguments into the compiler's link step.
func (s *BuildSpec) LinkerEnv() []string {
	if len(s.Linker.ExtraLinkArgs) == 0 {
		return nil
	}

	flags := make([]string, 0, len(s.Linker.ExtraLinkArgs))
	for _, arg := range s.Linker.ExtraLinkArgs {
		flags = append(flags, "-Clink-arg="+arg)
	}

	return []string{"RUSTFLAGS=" + strings.Join(flags, " ")}
}

// Build runs the compile/link stage synchronously. The compiler's output is
// streamed to the given writers. A non-zero exit is wrapped in [BuildError]
// with the exit code preserved verbatim.
func Build(
	ctx context.Context,
	spec BuildSpec,
	stdout, stderr io.Writer,
) error {
	compiler := spec.Compiler
	if compiler == "" {
		compiler = DefaultCompiler
	}

	path, err := exec.LookPath(compiler)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCompilerNotFound, compiler)
	}

	cmd := exec.CommandContext(ctx, path, spec.Arguments()...)
	cmd.Dir = spec.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), spec.LinkerEnv()...)

	err = cmd.Run()
	if err != nil {
		buildErr := &BuildError{Err: err, ExitCode: -1}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			buildErr.ExitCode = exitErr.ExitCode()
		}

		return buildErr
	}

	return nil
}
