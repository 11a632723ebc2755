// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aibor/vex/internal/qemu"
)

func newExecCommand(env *appEnv) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "exec <name>",
		Short: "Launch QEMU with a saved configuration",
		Long: `Launch QEMU with a saved configuration. The command blocks until
the QEMU process terminated and exits with the same exit code.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: env.completeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(
				cmd.Context(),
				env,
				cmd.OutOrStdout(),
				args[0],
				debug,
			)
		},
	}

	cmd.Flags().BoolVarP(
		&debug,
		"debug",
		"d",
		false,
		"add the GDB debug flags -s -S to the launch arguments",
	)

	return cmd
}

func runExec(
	ctx context.Context,
	env *appEnv,
	out io.Writer,
	name string,
	debug bool,
) error {
	record, err := env.openStore().Load(name)
	if err != nil {
		return err
	}

	// Debug flags are injected into the in-memory argument list only.
	// The stored record stays untouched.
	qemuArgs := record.Args
	if debug {
		qemuArgs = qemu.AppendDebugArgs(qemuArgs)
	}

	spec := qemu.CommandSpec{
		Executable: record.Executable,
		Args:       qemuArgs,
	}

	fmt.Fprintf(out, "Starting configuration %q%s: %s %v\n",
		name, describeSuffix(record.Description), spec.Executable, spec.Args)

	if debug {
		fmt.Fprintf(out,
			"GDB server listening on localhost:%d."+
				" Attach with: gdb -ex \"target remote :%d\"\n",
			qemu.GDBPort, qemu.GDBPort)
	}

	slog.Debug("Running QEMU command",
		slog.String("executable", spec.Executable),
		slog.Any("args", spec.Args))

	return env.runner.Run(ctx, spec, env.io)
}

func describeSuffix(description string) string {
	if description == "" {
		return ""
	}

	return fmt.Sprintf(" (%s)", description)
}
