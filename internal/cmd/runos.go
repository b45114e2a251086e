// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bootforge/bootforge/internal/pipeline"
)

func (c *CLI) newRunOSCmd() *cobra.Command {
	var (
		release  bool
		testMode bool
	)

	cmd := &cobra.Command{
		Use:   "run-os",
		Short: "Boot a previously packaged image in the VM runner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := pipeline.RunSpec{
				Dir:      c.dir,
				Config:   c.cfg,
				Release:  release,
				TestMode: testMode,
			}

			return pipeline.Run(
				cmd.Context(), spec, c.stdin, c.stdout, c.stderr,
			)
		},
	}

	cmd.Flags().BoolVar(
		&release, "release", false, "run the release profile's image",
	)
	cmd.Flags().BoolVar(
		&testMode, "test", false,
		"boot with the guest test harness devices attached",
	)

	return cmd
}
