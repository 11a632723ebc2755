// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newRenameCommand(env *appEnv) *cobra.Command {
	var (
		force       bool
		description string
	)

	cmd := &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename a saved configuration",
		Long: `Rename a saved configuration, optionally replacing its
description.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: env.completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			newDescription := (*string)(nil)
			if cmd.Flags().Changed("desc") {
				newDescription = &description
			}

			return runRename(
				env,
				cmd.OutOrStdout(),
				args[0],
				args[1],
				newDescription,
				force,
			)
		},
	}

	cmd.Flags().BoolVarP(
		&force,
		"force",
		"y",
		false,
		"overwrite an existing configuration without asking",
	)
	cmd.Flags().StringVarP(
		&description,
		"desc",
		"d",
		"",
		"new description of the configuration",
	)

	return cmd
}

func runRename(
	env *appEnv,
	out io.Writer,
	oldName string,
	newName string,
	newDescription *string,
	force bool,
) error {
	configStore := env.openStore()

	// The source is loaded before the target is considered, so a
	// missing source never touches the target.
	record, err := configStore.Load(oldName)
	if err != nil {
		return err
	}

	if configStore.Exists(newName) && !force {
		prompt := fmt.Sprintf("Configuration %q already exists, overwrite?",
			newName)

		overwrite, err := env.confirm.Confirm(prompt, false)
		if err != nil {
			return err
		}

		if !overwrite {
			fmt.Fprintln(out, "Rename cancelled.")
			return nil
		}
	}

	if newDescription != nil {
		record.Description = *newDescription
	}

	// Write-new then delete-old is not transactional. An interruption
	// between the two calls leaves the record under both names.
	err = configStore.Save(newName, record)
	if err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	err = configStore.Delete(oldName)
	if err != nil {
		return fmt.Errorf("delete old configuration: %w", err)
	}

	fmt.Fprintf(out, "Configuration %q renamed to %q.\n", oldName, newName)

	return nil
}
