// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionLine(t *testing.T) {
	tests := []struct {
		shell    string
		expected string
	}{
		{
			shell:    "bash",
			expected: `eval "$(vex completion bash)"`,
		},
		{
			shell:    "zsh",
			expected: `eval "$(vex completion zsh)"`,
		},
		{
			shell:    "fish",
			expected: "vex completion fish | source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			actual, err := completionLine(tt.shell)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := completionLine("tcsh")
		assert.ErrorIs(t, err, ErrShellUnknown)
	})
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected string
	}{
		{
			name:     "bash",
			env:      "/bin/bash",
			expected: "bash",
		},
		{
			name:     "zsh",
			env:      "/usr/bin/zsh",
			expected: "zsh",
		},
		{
			name:     "pwsh maps to powershell",
			env:      "/usr/bin/pwsh",
			expected: "powershell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			assert.Equal(t, tt.expected, detectShell())
		})
	}
}

func TestInitCommand(t *testing.T) {
	t.Run("print only", func(t *testing.T) {
		te := newTestEnv(t, "")

		err := te.execute("init", "--shell", "bash", "--print")
		require.NoError(t, err)

		assert.Equal(t, "eval \"$(vex completion bash)\"\n",
			te.stdout.String())
	})

	t.Run("installs into rc file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		rcFile := filepath.Join(home, ".zshrc")

		te := newTestEnv(t, "")
		err := te.execute("init", "--shell", "zsh")
		require.NoError(t, err)

		content, err := os.ReadFile(rcFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# vex shell completion")
		assert.Contains(t, string(content), `eval "$(vex completion zsh)"`)
	})

	t.Run("already installed", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		rcFile := filepath.Join(home, ".zshrc")
		err := os.WriteFile(
			rcFile,
			[]byte("eval \"$(vex completion zsh)\"\n"),
			0o644,
		)
		require.NoError(t, err)

		te := newTestEnv(t, "")
		err = te.execute("init", "--shell", "zsh")
		require.NoError(t, err)

		assert.Contains(t, te.stdout.String(), "already configured")

		content, err := os.ReadFile(rcFile)
		require.NoError(t, err)
		assert.Equal(t, "eval \"$(vex completion zsh)\"\n", string(content))
	})

	t.Run("unknown shell", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/tcsh")

		te := newTestEnv(t, "")
		err := te.execute("init")
		assert.ErrorIs(t, err, ErrShellUnknown)
	})
}
