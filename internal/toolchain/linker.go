// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

// LinkerConfig is the complete set of linker parameters required to produce
// a freestanding binary on one host platform. Exactly one LinkerConfig is
// active per build, selected solely by [HostPlatform].
type LinkerConfig struct {
	// EntrySymbol overrides the linker's entry point. Empty means the
	// default entry is retained.
	EntrySymbol string

	// ExtraLinkArgs are the literal arguments passed to the linker, in
	// order. They encode EntrySymbol, NoStartupFiles and Subsystem in the
	// syntax the platform's linker expects.
	ExtraLinkArgs []string

	// NoStartupFiles suppresses the C runtime startup objects.
	NoStartupFiles bool

	// Subsystem is the binary subsystem to request. Windows only.
	Subsystem string

	// RedirectRunner marks the bare-target configuration: no linker
	// flags apply, and "run" operations must go through the
	// package-and-boot pipeline instead of executing the binary.
	RedirectRunner bool
}

// ResolveLinkerConfig maps a host platform to its linker configuration.
//
// The table is fixed. A wrong linker configuration produces a binary that
// links fine but cannot boot, so an unrecognized platform is refused with
// [ErrUnknownHostPlatform] rather than answered with a guessed default.
func ResolveLinkerConfig(host HostPlatform) (LinkerConfig, error) {
	switch host {
	case Linux:
		// The default entry symbol works, only the startup files must
		// be suppressed.
		return LinkerConfig{
			NoStartupFiles: true,
			ExtraLinkArgs:  []string{"-nostartfiles"},
		}, nil
	case Windows:
		// An explicit entry point implies no startup files. Without
		// the console subsystem the linker assumes a GUI binary.
		return LinkerConfig{
			EntrySymbol: "_start",
			Subsystem:   "console",
			ExtraLinkArgs: []string{
				"/ENTRY:_start",
				"/SUBSYSTEM:console",
			},
		}, nil
	case Darwin:
		// Mach-O prepends an underscore to symbol names. The binary
		// must be fully static since there is no dynamic loader to
		// rely on.
		return LinkerConfig{
			EntrySymbol:    "__start",
			NoStartupFiles: true,
			ExtraLinkArgs: []string{
				"-e", "__start",
				"-static",
				"-nostartfiles",
			},
		}, nil
	case None:
		return LinkerConfig{RedirectRunner: true}, nil
	default:
		return LinkerConfig{}, ErrUnknownHostPlatform
	}
}
