// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:               "rm <name>",
		Short:             "Delete a saved configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: env.completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			err := env.openStore().Delete(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Configuration %q deleted.\n", name)

			return nil
		},
	}
}
