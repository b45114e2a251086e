// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package toolchain resolves the host-dependent toolchain configuration for
// building a freestanding kernel binary and drives the external compiler
// with it.
//
// The resolution is a pure mapping from the build host to a fixed linker
// configuration plus a fixed set of runtime support crates that must be
// compiled from source against the custom target. Nothing here invokes the
// linker directly; the resolved configuration feeds the compiler invocation.
package toolchain
