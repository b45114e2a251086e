// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bootforge/bootforge/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	rc := cmd.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	cancel()
	os.Exit(rc)
}
