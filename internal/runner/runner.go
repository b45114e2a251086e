// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultExecutable is the VM runner used to boot packaged images.
const DefaultExecutable = "qemu-system-x86_64"

// Parameters of the guest test exit device. The guest writes its test
// result to this I/O port, which terminates the runner with the encoded
// code. See [DecodeTestExit].
const (
	testDeviceIOBase = 0xf4
	testDeviceIOSize = 0x04
)

// CommandSpec defines the parameters for a runner [Command]. Constructed
// immediately before the invocation, discarded after.
type CommandSpec struct {
	// Executable is the runner binary. Defaults to [DefaultExecutable]
	// if empty.
	Executable string

	// Image is the path of the packaged bootable disk image. It is
	// attached in raw format, since the packager emits no container
	// format around it.
	Image string

	// Memory for the machine in MB. 0 keeps the runner's default.
	Memory uint64

	// Disable KVM acceleration.
	NoKVM bool

	// TestMode attaches the test exit device and wires the guest's
	// serial port to stdio, with no video output. The guest's test
	// harness reports through the device instead of a display.
	TestMode bool

	// ExtraArgs are passed to the runner in addition to the essential
	// arguments. They must not collide with them.
	ExtraArgs []Argument
}

// AddDefaults fills unset fields with defaults for the current machine.
func (s *CommandSpec) AddDefaults() {
	if s.Executable == "" {
		s.Executable = DefaultExecutable
	}

	if !s.NoKVM {
		s.NoKVM = !KVMAvailable()
	}
}

// arguments compiles the argument list for the runner command.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		RepeatableArg("drive", "format=raw", "file="+s.Image),
	}

	if s.Memory != 0 {
		args = append(args,
			UniqueArg("m", strconv.FormatUint(s.Memory, 10)))
	}

	if !s.NoKVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	if s.TestMode {
		args = append(args,
			RepeatableArg("device", fmt.Sprintf(
				"isa-debug-exit,iobase=%#04x,iosize=%#04x",
				testDeviceIOBase, testDeviceIOSize,
			)),
			RepeatableArg("serial", "stdio"),
			UniqueArg("display", "none"),
		)
	}

	return append(args, s.ExtraArgs...)
}

// Command is a single runner invocation, ready to run.
type Command struct {
	executable string
	args       []string
	testMode   bool
}

// NewCommand builds a [Command] from the given spec. It fails on argument
// collisions between essential and extra arguments.
func NewCommand(spec CommandSpec) (*Command, error) {
	spec.AddDefaults()

	args, err := buildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		executable: spec.Executable,
		args:       args,
		testMode:   spec.TestMode,
	}

	return cmd, nil
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return c.executable + " " + strings.Join(c.args, " ")
}

// Probe resolves the given runner executable on the search path. The
// zero-value name probes for [DefaultExecutable].
func Probe(executable string) error {
	if executable == "" {
		executable = DefaultExecutable
	}

	_, err := exec.LookPath(executable)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRunnerNotFound, executable)
	}

	return nil
}

// Run executes the runner synchronously and streams its output to the
// given writers.
//
// Outside test mode the runner's exit code is passed through verbatim in
// an [ExitError]: a non-zero code usually reflects the guest's own
// behavior, not a pipeline defect. In test mode the exit code is decoded
// through the test exit device encoding first.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	path, err := exec.LookPath(c.executable)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRunnerNotFound, c.executable)
	}

	cmd := exec.CommandContext(ctx, path, c.args...)
	cmd.Stdin = stdin

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	// Guest serial output and runner diagnostics are copied separately
	// so they stay attributable.
	var copyGroup errgroup.Group

	copyGroup.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	copyGroup.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start runner: %w", err)
	}

	// Drain the pipes before Wait closes them.
	copyErr := copyGroup.Wait()
	runErr := cmd.Wait()

	err = c.evalExit(runErr)
	if err != nil {
		return err
	}

	if copyErr != nil {
		return fmt.Errorf("copy output: %w", copyErr)
	}

	return nil
}

func (c *Command) evalExit(runErr error) error {
	if !c.testMode {
		if runErr == nil {
			return nil
		}

		exitErr := &ExitError{Err: runErr, ExitCode: -1}

		var execErr *exec.ExitError
		if errors.As(runErr, &execErr) {
			exitErr.ExitCode = execErr.ExitCode()
		}

		return exitErr
	}

	// In test mode the guest must terminate the runner through the test
	// exit device, so a clean runner exit means the harness never ran.
	if runErr == nil {
		return ErrGuestNoTestExit
	}

	var execErr *exec.ExitError
	if !errors.As(runErr, &execErr) {
		return &ExitError{Err: runErr, ExitCode: -1}
	}

	guestCode, ok := DecodeTestExit(execErr.ExitCode())
	if !ok {
		return &ExitError{
			Err:      fmt.Errorf("%w: %v", ErrGuestNoTestExit, runErr),
			ExitCode: execErr.ExitCode(),
		}
	}

	if guestCode != TestExitSuccess {
		return &ExitError{
			Err: fmt.Errorf(
				"%w: code %#02x", ErrGuestTestFailure, guestCode,
			),
			ExitCode: guestCode,
		}
	}

	return nil
}
