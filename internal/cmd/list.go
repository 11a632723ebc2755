// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newListCommand(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(env, cmd.OutOrStdout())
		},
	}
}

func runList(env *appEnv, out io.Writer) error {
	configStore := env.openStore()

	if _, err := os.Stat(configStore.Dir()); err != nil {
		fmt.Fprintln(out, "No configurations saved yet.")
		return nil
	}

	entries, err := configStore.List()
	if err != nil {
		return fmt.Errorf("list configurations: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No configurations found.")
		return nil
	}

	fmt.Fprintln(out, "Saved configurations:")

	for _, entry := range entries {
		description := entry.Record.Description
		if description == "" {
			description = "(no description)"
		}

		fmt.Fprintf(out, "  %s - %s\n", entry.Name, description)
		fmt.Fprintf(out, "    QEMU: %s\n", entry.Record.Executable)
		fmt.Fprintf(out, "    Args: %v\n", entry.Record.Args)
		fmt.Fprintln(out)
	}

	return nil
}
