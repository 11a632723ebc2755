// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"fmt"
)

// Record is a single stored QEMU launch configuration. The JSON field
// names are fixed, so record files written by older versions of the
// tool keep working.
type Record struct {
	// Executable is the path or name of the QEMU binary to invoke.
	Executable string `json:"qemu_bin"`

	// Args are the launch arguments, passed to the binary verbatim.
	Args []string `json:"args"`

	// Description is free form text describing the configuration. It
	// is optional.
	Description string `json:"desc,omitempty"`
}

// recordFile is the decoding view of a record file. Pointer fields
// distinguish absent keys from present empty values, so required
// fields can be validated after decoding. Unknown fields are ignored
// to stay forward compatible with additive schema changes.
type recordFile struct {
	Executable  *string   `json:"qemu_bin"`
	Args        *[]string `json:"args"`
	Description *string   `json:"desc"`
}

func encodeRecord(record Record) ([]byte, error) {
	// Normalize so an unset argument list is stored as an empty list,
	// not JSON null.
	if record.Args == nil {
		record.Args = []string{}
	}

	data, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return append(data, '\n'), nil
}

func decodeRecord(data []byte) (Record, error) {
	var file recordFile

	err := json.Unmarshal(data, &file)
	if err != nil {
		return Record{}, fmt.Errorf("decode: %w", err)
	}

	if file.Executable == nil {
		return Record{}, fmt.Errorf("%w: qemu_bin", ErrFieldMissing)
	}

	if file.Args == nil {
		return Record{}, fmt.Errorf("%w: args", ErrFieldMissing)
	}

	record := Record{
		Executable: *file.Executable,
		Args:       *file.Args,
	}

	// The description is optional. An absent key and a JSON null both
	// mean an empty description.
	if file.Description != nil {
		record.Description = *file.Description
	}

	return record, nil
}
