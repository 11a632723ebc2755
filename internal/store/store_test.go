// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/vex/internal/store"
)

func writeRecordFile(t *testing.T, dir, name, content string) {
	t.Helper()

	err := os.WriteFile(
		filepath.Join(dir, name+".json"),
		[]byte(content),
		0o644,
	)
	require.NoError(t, err)
}

func TestStoreSaveLoadRoundtrip(t *testing.T) {
	tests := []struct {
		name   string
		record store.Record
	}{
		{
			name: "full record",
			record: store.Record{
				Executable:  "qemu-system-x86_64",
				Args:        []string{"-m", "512", "-hda", "disk.img"},
				Description: "small test vm",
			},
		},
		{
			name: "no description",
			record: store.Record{
				Executable: "qemu-system-aarch64",
				Args:       []string{"-M", "virt"},
			},
		},
		{
			name: "no args",
			record: store.Record{
				Executable: "qemu-system-x86_64",
				Args:       []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configStore := store.New(t.TempDir())

			err := configStore.Save("vm1", tt.record)
			require.NoError(t, err)

			actual, err := configStore.Load("vm1")
			require.NoError(t, err)

			expected := tt.record
			if expected.Args == nil {
				expected.Args = []string{}
			}

			assert.Equal(t, expected, actual)
		})
	}
}

func TestStoreSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "configs")
	configStore := store.New(dir)

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{},
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "vm1.json"))
}

func TestStoreSaveOverwrites(t *testing.T) {
	configStore := store.New(t.TempDir())

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{"-m", "512"},
	})
	require.NoError(t, err)

	updated := store.Record{
		Executable:  "qemu-system-aarch64",
		Args:        []string{"-m", "1024"},
		Description: "updated",
	}

	err = configStore.Save("vm1", updated)
	require.NoError(t, err)

	actual, err := configStore.Load("vm1")
	require.NoError(t, err)
	assert.Equal(t, updated, actual)
}

func TestStoreExists(t *testing.T) {
	configStore := store.New(t.TempDir())

	assert.False(t, configStore.Exists("vm1"))

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{},
	})
	require.NoError(t, err)

	assert.True(t, configStore.Exists("vm1"))
	assert.False(t, configStore.Exists("vm2"))
}

func TestStoreLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		noFile      bool
		expectedErr error
	}{
		{
			name:        "not found",
			noFile:      true,
			expectedErr: store.ErrNotFound,
		},
		{
			name:        "invalid json",
			content:     "{ not json",
			expectedErr: &store.CorruptError{},
		},
		{
			name:        "missing executable",
			content:     `{"args": []}`,
			expectedErr: &store.CorruptError{},
		},
		{
			name:        "missing args",
			content:     `{"qemu_bin": "qemu-system-x86_64"}`,
			expectedErr: &store.CorruptError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			configStore := store.New(dir)

			if !tt.noFile {
				writeRecordFile(t, dir, "vm1", tt.content)
			}

			_, err := configStore.Load("vm1")
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestStoreLoadTolerant(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected store.Record
	}{
		{
			name: "unknown fields ignored",
			content: `{
				"qemu_bin": "qemu-system-x86_64",
				"args": ["-m", "512"],
				"desc": "vm",
				"created_by": "a future version",
				"color": "orange"
			}`,
			expected: store.Record{
				Executable:  "qemu-system-x86_64",
				Args:        []string{"-m", "512"},
				Description: "vm",
			},
		},
		{
			name:    "missing description",
			content: `{"qemu_bin": "qemu-system-x86_64", "args": []}`,
			expected: store.Record{
				Executable: "qemu-system-x86_64",
				Args:       []string{},
			},
		},
		{
			name: "null description",
			content: `{
				"qemu_bin": "qemu-system-x86_64",
				"args": [],
				"desc": null
			}`,
			expected: store.Record{
				Executable: "qemu-system-x86_64",
				Args:       []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			configStore := store.New(dir)
			writeRecordFile(t, dir, "vm1", tt.content)

			actual, err := configStore.Load("vm1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	configStore := store.New(t.TempDir())

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{},
	})
	require.NoError(t, err)

	err = configStore.Delete("vm1")
	require.NoError(t, err)

	assert.False(t, configStore.Exists("vm1"))

	_, err = configStore.Load("vm1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = configStore.Delete("vm1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStoreListSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	configStore := store.New(dir)

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{"-m", "512"},
	})
	require.NoError(t, err)

	err = configStore.Save("vm2", store.Record{
		Executable:  "qemu-system-aarch64",
		Args:        []string{},
		Description: "arm vm",
	})
	require.NoError(t, err)

	writeRecordFile(t, dir, "broken", "{ not json")

	entries, err := configStore.List()
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	assert.ElementsMatch(t, []string{"vm1", "vm2"}, names)
}

func TestStoreListMissingDirectory(t *testing.T) {
	configStore := store.New(filepath.Join(t.TempDir(), "does-not-exist"))

	entries, err := configStore.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreListNamesIncludesCorrupt(t *testing.T) {
	dir := t.TempDir()
	configStore := store.New(dir)

	err := configStore.Save("vm1", store.Record{
		Executable: "qemu-system-x86_64",
		Args:       []string{},
	})
	require.NoError(t, err)

	writeRecordFile(t, dir, "broken", "{ not json")

	// Not a record file, must not be listed.
	err = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	require.NoError(t, err)

	names, err := configStore.ListNames()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"vm1", "broken"}, names)
}

func TestStoreInvalidNames(t *testing.T) {
	configStore := store.New(t.TempDir())

	for _, name := range []string{"", ".", "..", "a/b"} {
		t.Run(name, func(t *testing.T) {
			err := configStore.Save(name, store.Record{
				Executable: "qemu-system-x86_64",
				Args:       []string{},
			})
			assert.ErrorIs(t, err, store.ErrInvalidName)

			_, err = configStore.Load(name)
			assert.ErrorIs(t, err, store.ErrInvalidName)

			err = configStore.Delete(name)
			assert.ErrorIs(t, err, store.ErrInvalidName)

			assert.False(t, configStore.Exists(name))
		})
	}
}
