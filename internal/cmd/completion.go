// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCompleteConfigsCommand provides the configuration names for shell
// completion scripts that cannot use the generated completion
// machinery. It prints names only, one per line, without decoding any
// record, so corrupt records are listed as well.
func newCompleteConfigsCommand(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:    "complete-configs",
		Short:  "List configuration names for shell completion",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := env.openStore().ListNames()
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
