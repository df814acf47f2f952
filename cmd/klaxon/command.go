// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
)

// CommandError wraps a guarded command failure with its exit status.
//
// # Description
//
// ExitCode is the child's exit status when it ran, or -1 when it could not
// be started.
//
// # Example
//
//	var cmdErr *CommandError
//	if errors.As(err, &cmdErr) {
//	    os.Exit(cmdErr.ExitCode)
//	}
type CommandError struct {
	// Command is the command line that was executed.
	Command string

	// ExitCode is the process exit code (-1 if unknown).
	ExitCode int

	// Started is false when the command could not be started at all.
	Started bool

	// Wrapped is the underlying error.
	Wrapped error
}

// Error returns a formatted error message.
func (e *CommandError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s (exit %d): %v", e.Command, e.ExitCode, e.Wrapped)
	}
	return fmt.Sprintf("%s (exit %d)", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Wrapped
}

// runCommand runs args with the given streams attached and waits for it.
//
// Ctrl+C reaches the child through the terminal's process group; klaxon
// swallows its own copy and waits for the child to decide.
func runCommand(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdin = stdin
	c.Stdout = stdout
	c.Stderr = stderr

	err := c.Run()
	if err == nil {
		return nil
	}

	line := strings.Join(args, " ")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Command: line, ExitCode: exitErr.ExitCode(), Started: true, Wrapped: err}
	}
	return &CommandError{Command: line, ExitCode: -1, Wrapped: err}
}

// exitCodeOf maps a guarded command error to klaxon's exit code.
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Started && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}

// isExitStatus reports whether err carries a status from a child that ran.
func isExitStatus(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Started
}
