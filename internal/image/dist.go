// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import (
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
)

// DistBundle describes the artifacts bundled into a distributable archive:
// the linked kernel binary, the packaged bootable image, and the target
// descriptor file the build was keyed on.
type DistBundle struct {
	Kernel     string
	Image      string
	TargetSpec string
}

// members returns the bundle contents in their fixed archive order.
func (b DistBundle) members() []string {
	return []string{b.Kernel, b.Image, b.TargetSpec}
}

// WriteTo writes the bundle as a cpio (newc) archive to the given writer.
// Member order is fixed so identical inputs produce identical archives.
func (b DistBundle) WriteTo(w io.Writer) error {
	writer := cpio.NewWriter(w)

	for _, path := range b.members() {
		err := writeMember(writer, path)
		if err != nil {
			return err
		}
	}

	err := writer.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

// WriteFile writes the bundle archive to the given path, replacing an
// existing file.
func (b DistBundle) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	err = b.WriteTo(file)
	if err != nil {
		_ = file.Close()
		return err
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}

	return nil
}

func writeMember(writer *cpio.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open member: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat member: %w", err)
	}

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("header for %s: %w", path, err)
	}

	err = writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	_, err = io.Copy(writer, file)
	if err != nil {
		return fmt.Errorf("write member %s: %w", path, err)
	}

	return nil
}
