// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// DefaultTerminalWidth is reported when no terminal is attached.
const DefaultTerminalWidth = 80

// TerminalWidth returns the column count of the terminal attached to stderr,
// falling back to stdout and then DefaultTerminalWidth.
func TerminalWidth() int {
	for _, f := range []*os.File{os.Stderr, os.Stdout} {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return DefaultTerminalWidth
}

// StdinIsTerminal reports whether standard input is an interactive terminal.
// Cygwin and MSYS pseudo terminals count as terminals.
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RandomHex returns n cryptographically random bytes as lower-case hex.
//
// crypto/rand.Read does not fail on supported platforms, so there is no
// error to return.
func RandomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
