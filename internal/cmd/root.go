// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd implements the bootforge command surface.
//
// There are exactly two operations, build-os and run-os, plus a version
// command. This is deliberately not a general build system CLI.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bootforge/bootforge/internal/config"
	"github.com/bootforge/bootforge/internal/toolchain"
)

// CLI is the bootforge command line interface.
type CLI struct {
	rootCmd *cobra.Command

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Resolved once in the persistent pre-run and passed down
	// explicitly, never re-read from the environment later.
	dir  string
	host toolchain.HostPlatform
	cfg  config.Config

	configPath string
	debug      bool
}

// New creates the CLI with the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *CLI {
	c := &CLI{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		host:   toolchain.Native,
	}

	rootCmd := &cobra.Command{
		Use:           "bootforge",
		Short:         "Build and boot a freestanding x86_64 kernel image",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(
		&c.configPath, "config", "c", config.DefaultFileName,
		"path to the project configuration file",
	)
	flags.BoolVar(&c.debug, "debug", false, "enable debug output")
	flags.Var(
		&c.host, "host",
		"build host platform: linux, windows, darwin, none",
	)

	rootCmd.AddCommand(c.newBuildOSCmd())
	rootCmd.AddCommand(c.newRunOSCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd

	return c
}

// setup runs the configuration phase shared by all commands: logging,
// project root, project configuration.
func (c *CLI) setup() error {
	setupLogging(c.stderr, c.debug)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	c.dir = dir

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	c.cfg = cfg

	return nil
}

// Execute runs the CLI with the given arguments.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	c.rootCmd.SetArgs(args)

	return c.rootCmd.ExecuteContext(ctx)
}
