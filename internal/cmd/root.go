// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newRootCommand(env *appEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vex",
		Short: "Save and replay QEMU launch configurations",
		Long: `vex stores named sets of QEMU launch parameters and runs
them again later, optionally with GDB debug flags injected.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(env.io.Stderr, env.verbose)
		},
	}

	cmd.SetIn(env.io.Stdin)
	cmd.SetOut(env.io.Stdout)
	cmd.SetErr(env.io.Stderr)

	cmd.PersistentFlags().StringVar(
		&env.configDir,
		"dir",
		env.configDir,
		"directory the configurations are stored in",
	)
	cmd.PersistentFlags().BoolVarP(
		&env.verbose,
		"verbose",
		"v",
		false,
		"enable debug logging",
	)

	cmd.AddCommand(
		newSaveCommand(env),
		newExecCommand(env),
		newRemoveCommand(env),
		newListCommand(env),
		newPrintCommand(env),
		newRenameCommand(env),
		newInitCommand(env),
		newCompleteConfigsCommand(env),
	)

	return cmd
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	return buildInfo.Main.Version
}
