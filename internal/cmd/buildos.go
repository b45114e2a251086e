// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bootforge/bootforge/internal/pipeline"
)

func (c *CLI) newBuildOSCmd() *cobra.Command {
	var (
		release bool
		dist    string
	)

	cmd := &cobra.Command{
		Use:   "build-os",
		Short: "Build the kernel and package it into a bootable image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := pipeline.BuildSpec{
				Dir:      c.dir,
				Host:     c.host,
				Config:   c.cfg,
				Release:  release,
				DistPath: dist,
			}

			imagePath, err := pipeline.Build(
				cmd.Context(), spec, c.stdout, c.stderr,
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.stdout, imagePath)

			return nil
		},
	}

	cmd.Flags().BoolVar(
		&release, "release", false, "build with the release profile",
	)
	cmd.Flags().StringVar(
		&dist, "dist", "",
		"write a cpio bundle of kernel, image and target spec to this path",
	)

	return cmd
}
