// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCommand(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:               "print <name>",
		Short:             "Print a single saved configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: env.completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			configStore := env.openStore()

			record, err := configStore.Load(name)
			if err != nil {
				return err
			}

			description := record.Description
			if description == "" {
				description = "(no description)"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", name)
			fmt.Fprintf(out, "Description: %s\n", description)
			fmt.Fprintf(out, "QEMU:        %s\n", record.Executable)
			fmt.Fprintf(out, "Args:        %v\n", record.Args)
			fmt.Fprintf(out, "File:        %s\n", configStore.Path(name))

			return nil
		},
	}
}
