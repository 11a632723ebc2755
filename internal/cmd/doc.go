// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for vex. It wires
// the sub commands to the configuration store and the QEMU command
// runner and maps errors to process exit codes.
package cmd
