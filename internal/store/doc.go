// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store persists named QEMU launch configurations as one JSON
// file per record in a fixed directory. The record name is the file
// name stem and is never stored inside the record itself.
//
// The store assumes a single cooperating user. Concurrent invocations
// racing on the same name are not synchronized and follow ordinary
// file system semantics (last writer wins).
package store
