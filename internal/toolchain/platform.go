// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import "runtime"

// HostPlatform identifies the platform the toolchain runs on. It is
// determined once at configuration time and passed explicitly to everything
// that needs it, so a build never sees two different answers.
type HostPlatform string

// Recognized host platforms.
const (
	Linux   HostPlatform = "linux"
	Windows HostPlatform = "windows"
	Darwin  HostPlatform = "darwin"

	// None is the custom bare target itself acting as host. No linker
	// flags apply in this configuration. Instead, runs are redirected
	// through the package-and-boot pipeline.
	None HostPlatform = "none"
)

// Native is the platform of the current process.
const Native = HostPlatform(runtime.GOOS)

// String implements [fmt.Stringer].
func (p *HostPlatform) String() string {
	return string(*p)
}

// Set implements [flag.Value].
func (p *HostPlatform) Set(s string) error {
	switch HostPlatform(s) {
	case Linux, Windows, Darwin, None:
		*p = HostPlatform(s)
	default:
		return ErrUnknownHostPlatform
	}

	return nil
}

// Type implements [pflag.Value].
func (p *HostPlatform) Type() string {
	return "platform"
}
