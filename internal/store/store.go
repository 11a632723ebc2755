// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const recordFileExt = ".json"

// DefaultDir returns the default storage directory for the current
// user.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".vex", "configs"), nil
}

// Entry is a named [Record] as returned by [Store.List].
type Entry struct {
	Name   string
	Record Record
}

// Store is a directory backed mapping from configuration name to
// [Record]. The zero value is not usable, use [New].
type Store struct {
	dir string
}

// New creates a [Store] backed by the given directory. The directory
// is created lazily on the first [Store.Save].
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a record with the given name is stored
// at.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+recordFileExt)
}

// Exists reports whether a record file for the given name is present.
func (s *Store) Exists(name string) bool {
	if validateName(name) != nil {
		return false
	}

	_, err := os.Stat(s.Path(name))

	return err == nil
}

// Load reads the record stored under the given name. It returns
// [ErrNotFound] if there is none and a [CorruptError] if the file
// content cannot be decoded.
func (s *Store) Load(name string) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err != nil {
		return Record{}, fmt.Errorf("read record: %w", err)
	}

	record, err := decodeRecord(data)
	if err != nil {
		return Record{}, &CorruptError{Name: name, Err: err}
	}

	return record, nil
}

// Save writes the record under the given name, replacing any existing
// record. The storage directory and its ancestors are created if
// absent. The file content is written with a single write call.
func (s *Store) Save(name string, record Record) error {
	if err := validateName(name); err != nil {
		return err
	}

	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	err = os.MkdirAll(s.dir, 0o755)
	if err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	err = os.WriteFile(s.Path(name), data, 0o644)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// Delete removes the record stored under the given name. It returns
// [ErrNotFound] if there is none.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if err != nil {
		return fmt.Errorf("remove record: %w", err)
	}

	return nil
}

// List returns all records that decode successfully, in directory
// enumeration order. Corrupt record files are skipped silently. A
// missing storage directory yields an empty list.
func (s *Store) List() ([]Entry, error) {
	names, err := s.ListNames()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))

	for _, name := range names {
		record, err := s.Load(name)
		if err != nil {
			continue
		}

		entries = append(entries, Entry{Name: name, Record: record})
	}

	return entries, nil
}

// ListNames returns the names of all record files, in directory
// enumeration order, without decoding their contents. So, unlike
// [Store.List], it includes corrupt records. It backs shell completion
// of configuration names.
func (s *Store) ListNames() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))

	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		fileName := dirEntry.Name()
		if filepath.Ext(fileName) != recordFileExt {
			continue
		}

		names = append(names, strings.TrimSuffix(fileName, recordFileExt))
	}

	return names, nil
}

func validateName(name string) error {
	switch name {
	case "", ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if strings.ContainsRune(name, os.PathSeparator) ||
		strings.ContainsRune(name, '/') {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
