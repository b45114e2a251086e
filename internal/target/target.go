// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package target holds the custom compilation target descriptor.
//
// The descriptor is a static, versioned value. It is serialized to the
// target specification file the compiler consumes and its name is the
// stable identifier builds are keyed on.
package target

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Revision of the descriptor contents. Bump whenever a field value changes:
// the rebuilt runtime support crates are only valid for the descriptor they
// were built against.
const Revision = 1

// DefaultName is the stable identifier of the custom target.
const DefaultName = "x86_64-bootforge"

// Descriptor describes the custom bare-metal compilation target. Fields map
// onto the compiler's target specification format.
type Descriptor struct {
	LLVMTarget         string `json:"llvm-target"`
	DataLayout         string `json:"data-layout"`
	Arch               string `json:"arch"`
	TargetEndian       string `json:"target-endian"`
	TargetPointerWidth string `json:"target-pointer-width"`
	TargetCIntWidth    string `json:"target-c-int-width"`
	OS                 string `json:"os"`
	Executables        bool   `json:"executables"`
	LinkerFlavor       string `json:"linker-flavor"`
	Linker             string `json:"linker"`
	PanicStrategy      string `json:"panic-strategy"`
	DisableRedzone     bool   `json:"disable-redzone"`
	Features           string `json:"features"`

	name string
}

// New returns the descriptor for the given target name, or the default
// x86_64 bare-metal target if name is empty.
//
// The target has no OS, aborts on panic (there is nothing to unwind into),
// keeps the red zone disabled so interrupt handlers cannot clobber stack
// data, and avoids SIMD registers since the kernel must not have to save
// them on every interrupt. Linking is done with the cross-platform LLD
// linker shipped with the compiler, so the descriptor works on every build
// host.
func New(name string) Descriptor {
	if name == "" {
		name = DefaultName
	}

	return Descriptor{
		LLVMTarget:         "x86_64-unknown-none",
		DataLayout:         "e-m:e-i64:64-f80:128-n8:16:32:64-S128",
		Arch:               "x86_64",
		TargetEndian:       "little",
		TargetPointerWidth: "64",
		TargetCIntWidth:    "32",
		OS:                 "none",
		Executables:        true,
		LinkerFlavor:       "ld.lld",
		Linker:             "rust-lld",
		PanicStrategy:      "abort",
		DisableRedzone:     true,
		Features:           "-mmx,-sse,+soft-float",

		name: name,
	}
}

// Name returns the stable target identifier. It names the descriptor file
// and the per-target build output directory.
func (d Descriptor) Name() string {
	return d.name
}

// SpecFileName returns the file name of the serialized descriptor.
func (d Descriptor) SpecFileName() string {
	return d.name + ".json"
}

// IsCustom reports whether the target is a custom one, which is the case
// for any target without a real OS. Custom targets have no prebuilt runtime
// support crates.
func (d Descriptor) IsCustom() bool {
	return d.OS == "none"
}

// WriteSpecFile serializes the descriptor into the given directory,
// unconditionally replacing a previous file. It returns the path of the
// written file.
func (d Descriptor) WriteSpecFile(dir string) (string, error) {
	data, err := json.MarshalIndent(&d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal target spec: %w", err)
	}

	path := filepath.Join(dir, d.SpecFileName())

	err = os.WriteFile(path, append(data, '\n'), 0o644)
	if err != nil {
		return "", fmt.Errorf("write target spec: %w", err)
	}

	return path, nil
}
