// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the optional project configuration file.
//
// The file only overrides defaults. A project without one builds fine, so
// a missing file is not an error, while a malformed one is.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project configuration file looked up relative to
// the project root.
const DefaultFileName = "bootforge.yaml"

// Config carries the project-level settings of a build.
type Config struct {
	// Binary is the name of the kernel binary the compiler produces.
	Binary string `yaml:"binary"`

	// Target overrides the name of the custom target descriptor.
	Target string `yaml:"target"`

	// Compiler, Packager and Runner override the external executables.
	Compiler string `yaml:"compiler"`
	Packager string `yaml:"packager"`
	Runner   string `yaml:"runner"`

	// Memory for the VM in MB.
	Memory uint64 `yaml:"memory"`

	// RunnerArgs are additional arguments passed to the VM runner.
	// Each entry is a name with an optional value, like
	// "no-reboot" or "cpu max".
	RunnerArgs []string `yaml:"runner_args"`
}

// Default returns the configuration used without a project file.
func Default() Config {
	return Config{
		Binary: "kernel",
	}
}

// Load reads the configuration file at the given path on top of the
// defaults. A missing file yields the plain defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Binary == "" {
		cfg.Binary = Default().Binary
	}

	return cfg, nil
}
