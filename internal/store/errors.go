// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned if no record exists for the requested
	// name.
	ErrNotFound = errors.New("configuration not found")

	// ErrInvalidName is returned if a name is not usable as a single
	// file path component.
	ErrInvalidName = errors.New("invalid configuration name")

	// ErrFieldMissing is returned if a record file lacks one of the
	// required fields.
	ErrFieldMissing = errors.New("required record field missing")
)

// CorruptError is returned by [Store.Load] if a record file exists but
// its content cannot be decoded into a [Record].
type CorruptError struct {
	Name string
	Err  error
}

// Error implements the [error] interface.
func (e *CorruptError) Error() string {
	return fmt.Sprintf("configuration %q corrupt: %v", e.Name, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CorruptError) Is(other error) bool {
	_, ok := other.(*CorruptError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CorruptError) Unwrap() error {
	return e.Err
}
