// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aibor/vex/internal/qemu"
	"github.com/aibor/vex/internal/store"
)

func newSaveCommand(env *appEnv) *cobra.Command {
	var (
		force       bool
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name> <qemu-bin> [qemu-args...]",
		Short: "Save QEMU launch parameters as a named configuration",
		Long: `Save QEMU launch parameters as a named configuration.

All arguments after the QEMU binary are stored verbatim, so flags meant
for QEMU must come after it. Example:

  vex save -d "small test vm" vm1 qemu-system-x86_64 -m 512 -hda disk.img`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(
				env,
				cmd.OutOrStdout(),
				args[0],
				args[1],
				args[2:],
				description,
				force,
			)
		},
	}

	// QEMU launch arguments start with hyphens themselves, so flag
	// parsing must stop at the first positional argument.
	cmd.Flags().SetInterspersed(false)

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
		"description of the configuration",
	)

	return cmd
}

func runSave(
	env *appEnv,
	out io.Writer,
	name string,
	executable string,
	qemuArgs []string,
	description string,
	force bool,
) error {
	configStore := env.openStore()

	if qemu.HasDebugArgs(qemuArgs) {
		fmt.Fprintln(out,
			"Debug flags -s or -S detected in the launch arguments.")
		fmt.Fprintln(out,
			"They start a GDB server at launch and are better injected"+
				" at run time with \"vex exec -d\".")

		strip, err := env.confirm.Confirm("Skip saving the debug flags?", true)
		if err != nil {
			return err
		}

		if strip {
			qemuArgs = qemu.StripDebugArgs(qemuArgs)
			fmt.Fprintf(out,
				"Debug flags are not saved. Use \"vex exec -d %s\" to"+
					" launch with GDB enabled.\n",
				name)
		} else {
			fmt.Fprintln(out, "Debug flags are kept in the configuration.")
		}
	}

	if configStore.Exists(name) && !force {
		prompt := fmt.Sprintf("Configuration %q already exists, overwrite?",
			name)

		overwrite, err := env.confirm.Confirm(prompt, false)
		if err != nil {
			return err
		}

		if !overwrite {
			fmt.Fprintln(out, "Save cancelled.")
			return nil
		}
	}

	record := store.Record{
		Executable:  executable,
		Args:        qemuArgs,
		Description: description,
	}

	err := configStore.Save(name, record)
	if err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	fmt.Fprintf(out, "Configuration %q saved to %s.\n",
		name, configStore.Path(name))

	return nil
}
