// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// ErrShellUnknown is returned if the shell is not given and cannot be
// detected from the environment.
var ErrShellUnknown = errors.New(
	"unknown shell, specify one with --shell (bash, zsh, fish, powershell)")

func newInitCommand(env *appEnv) *cobra.Command {
	var (
		shell     string
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install shell completion for vex",
		Long: `Install shell completion for vex by adding the completion line
to the shell's rc file. The shell is detected from the SHELL
environment variable if not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.OutOrStdout(), shell, printOnly)
		},
	}

	cmd.Flags().StringVarP(
		&shell,
		"shell",
		"s",
		"",
		"shell to install completion for (bash, zsh, fish, powershell)",
	)
	cmd.Flags().BoolVar(
		&printOnly,
		"print",
		false,
		"print the completion line instead of installing it",
	)

	_ = cmd.RegisterFlagCompletionFunc(
		"shell",
		cobra.FixedCompletions(
			[]string{"bash", "zsh", "fish", "powershell"},
			cobra.ShellCompDirectiveNoFileComp,
		),
	)

	return cmd
}

func runInit(out io.Writer, shell string, printOnly bool) error {
	if shell == "" {
		shell = detectShell()
	}

	line, err := completionLine(shell)
	if err != nil {
		return err
	}

	if printOnly {
		fmt.Fprintln(out, line)
		return nil
	}

	rcFile, err := shellRCFile(shell)
	if err != nil {
		return err
	}

	installed, err := completionInstalled(rcFile)
	if err != nil {
		return err
	}

	if installed {
		fmt.Fprintf(out,
			"Shell completion for vex is already configured in %s.\n", rcFile)
		return nil
	}

	err = appendCompletionLine(rcFile, line)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Shell completion for %s installed in %s.\n",
		shell, rcFile)
	fmt.Fprintf(out, "Run \"source %s\" or restart the shell to activate.\n",
		rcFile)

	return nil
}

func detectShell() string {
	shellPath, ok := os.LookupEnv("SHELL")
	if !ok {
		return ""
	}

	shell := filepath.Base(shellPath)
	if shell == "pwsh" {
		shell = "powershell"
	}

	return shell
}

func completionLine(shell string) (string, error) {
	switch shell {
	case "bash":
		return `eval "$(vex completion bash)"`, nil
	case "zsh":
		return `eval "$(vex completion zsh)"`, nil
	case "fish":
		return "vex completion fish | source", nil
	case "powershell":
		return "Invoke-Expression (& vex completion powershell | Out-String)",
			nil
	default:
		return "", ErrShellUnknown
	}
}

func shellRCFile(shell string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	switch shell {
	case "bash":
		// Prefer .bashrc, fall back to .bash_profile.
		bashRC := filepath.Join(home, ".bashrc")
		if _, err := os.Stat(bashRC); err == nil {
			return bashRC, nil
		}

		return filepath.Join(home, ".bash_profile"), nil
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	case "fish":
		return filepath.Join(home, ".config", "fish", "config.fish"), nil
	case "powershell":
		return filepath.Join(home, ".config", "powershell",
			"Microsoft.PowerShell_profile.ps1"), nil
	default:
		return "", ErrShellUnknown
	}
}

func completionInstalled(rcFile string) (bool, error) {
	content, err := os.ReadFile(rcFile)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("read %s: %w", rcFile, err)
	}

	return strings.Contains(string(content), "vex completion") ||
		strings.Contains(string(content), "vex init"), nil
}

func appendCompletionLine(rcFile string, line string) error {
	file, err := os.OpenFile(
		rcFile,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("open %s: %w", rcFile, err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "\n# vex shell completion\n%s\n", line)
	if err != nil {
		return fmt.Errorf("write %s: %w", rcFile, err)
	}

	return nil
}
