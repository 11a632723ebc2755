// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "slices"

// GDBPort is the local TCP port the QEMU GDB server listens on when
// started with the -s shorthand flag.
const GDBPort = 1234

const (
	// debugArgGDBServer makes QEMU listen for a GDB connection on
	// [GDBPort].
	debugArgGDBServer = "-s"
	// debugArgFreeze makes QEMU freeze the CPU at startup until a
	// debugger resumes it.
	debugArgFreeze = "-S"
)

func isDebugArg(arg string) bool {
	return arg == debugArgGDBServer || arg == debugArgFreeze
}

// HasDebugArgs reports whether the argument list contains any of the
// GDB debug flags.
func HasDebugArgs(args []string) bool {
	return slices.ContainsFunc(args, isDebugArg)
}

// StripDebugArgs returns a copy of the argument list with all
// occurrences of the GDB debug flags removed, regardless of their
// position.
func StripDebugArgs(args []string) []string {
	stripped := make([]string, 0, len(args))

	for _, arg := range args {
		if isDebugArg(arg) {
			continue
		}

		stripped = append(stripped, arg)
	}

	return stripped
}

// AppendDebugArgs returns a copy of the argument list with the GDB
// debug flags appended.
func AppendDebugArgs(args []string) []string {
	withDebug := make([]string, 0, len(args)+2)
	withDebug = append(withDebug, args...)

	return append(withDebug, debugArgGDBServer, debugArgFreeze)
}
