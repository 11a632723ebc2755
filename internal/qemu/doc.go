// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu runs QEMU system virtualization commands with stored
// launch arguments. It expects the required QEMU binary to be present
// on the system.
//
// The command inherits the caller's standard streams, so the guest
// console is interactive. The exit code of the QEMU process is
// reported via [CommandError].
package qemu
