// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aibor/vex/internal/qemu"
	"github.com/aibor/vex/internal/store"
)

// recordingRunner captures the command spec instead of spawning a
// process and returns a configured error.
type recordingRunner struct {
	spec   qemu.CommandSpec
	called bool
	err    error
}

func (r *recordingRunner) Run(
	_ context.Context,
	spec qemu.CommandSpec,
	_ IO,
) error {
	r.called = true
	r.spec = spec

	return r.err
}

type testEnv struct {
	env    *appEnv
	runner *recordingRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv builds an [appEnv] against a temporary store directory.
// Confirmation prompts read their answers from the given input, one
// answer per line.
func newTestEnv(t *testing.T, stdin string) *testEnv {
	t.Helper()

	runner := &recordingRunner{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cfg := IO{
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}

	env := &appEnv{
		io:        cfg,
		configDir: t.TempDir(),
		confirm:   newStdConfirmer(cfg.Stdin, stdout),
		runner:    runner,
	}

	return &testEnv{
		env:    env,
		runner: runner,
		stdout: stdout,
		stderr: stderr,
	}
}

func (te *testEnv) execute(args ...string) error {
	cmd := newRootCommand(te.env)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(context.Background())
}

func (te *testEnv) store() *store.Store {
	return te.env.openStore()
}

func (te *testEnv) mustSave(t *testing.T, name string, record store.Record) {
	t.Helper()

	if err := te.store().Save(name, record); err != nil {
		t.Fatalf("save record %q: %v", name, err)
	}
}
