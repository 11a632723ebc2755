// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question and blocks until an answer
// is read. An empty answer means the given default.
type Confirmer interface {
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// stdConfirmer reads answers line-wise from the command's input
// stream.
type stdConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdConfirmer(in io.Reader, out io.Writer) *stdConfirmer {
	return &stdConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements the [Confirmer] interface. Only "y" and "yes",
// case-insensitive, are accepting answers. End of input counts as an
// empty answer.
func (c *stdConfirmer) Confirm(prompt string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprintf(c.out, "%s %s ", prompt, hint)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultYes, nil
	}

	return answer == "y" || answer == "yes", nil
}
