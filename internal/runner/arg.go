// SPDX-FileCopyrightText: 2026 The bootforge authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a single runner argument with an optional value.
//
// Arguments are either unique, meaning their name may appear only once in a
// command, or repeatable.
type Argument struct {
	name       string
	value      string
	repeatable bool
}

// UniqueArg returns an [Argument] whose name may be used only once per
// command. Multiple values are joined with a comma.
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg returns an [Argument] that may appear multiple times per
// command. Multiple values are joined with a comma.
func RepeatableArg(name string, value ...string) Argument {
	return Argument{
		name:       name,
		value:      strings.Join(value, ","),
		repeatable: true,
	}
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	s := "-" + a.name
	if a.value != "" {
		s += " " + a.value
	}

	return s
}

// collides reports whether adding a to a command that already contains
// other violates uniqueness. Unique arguments collide by name, repeatable
// ones only when name and value match exactly.
func (a Argument) collides(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.repeatable {
		return a.value == other.value
	}

	return true
}

// buildArgumentStrings compiles the arguments into the string slice passed
// to [exec.Command]. It fails if any uniqueness constraint is violated, so
// user-supplied extra arguments cannot silently override the essential
// ones.
func buildArgumentStrings(args []Argument) ([]string, error) {
	strs := make([]string, 0, len(args)*2)

	for idx, arg := range args {
		if i := slices.IndexFunc(args[:idx], arg.collides); i != -1 {
			return nil, fmt.Errorf(
				"%w: %s, %s",
				ErrArgumentCollision,
				arg.String(),
				args[i].String(),
			)
		}

		strs = append(strs, "-"+arg.name)

		if arg.value != "" {
			strs = append(strs, arg.value)
		}
	}

	return strs, nil
}
