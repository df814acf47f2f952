// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package klaxon puts an interactive warning in front of destructive actions.

Before a caller deletes, drops or overwrites something, the gate prints an
optional block-letter banner and description to stderr and waits for the
operator to answer a challenge on stdin. The answer resolves the gate to
proceed or halt.

# Usage

Guarding a function:

	deleted, ok, err := klaxon.Guard(ctx, klaxon.Default(), klaxon.Request{
	    Banner:      "Delete",
	    Description: "About to delete every snapshot in " + bucket,
	    Color:       ux.ColorRed,
	    Mode:        klaxon.ModeRandom,
	}, func(ctx context.Context) (int, error) {
	    return store.DeleteAll(ctx)
	})

When the operator declines, the function is not called, "Skipping." is
printed and ok is false. Errors returned by the function come back
unchanged.

Bare gate:

	klaxon.Alert(ctx, klaxon.Request{Mode: klaxon.ModeYesNo})
	// only reached when the operator answered y/yes

Without a guarded function a declined gate prints "Exiting." and ends the
process with status 1.

# Challenges

	ModeEnter       press ENTER, Ctrl+C aborts (default)
	ModeYesNo       "y" or "yes", any case
	ModeRandom      retype four random hex digits
	ModePhrase(p)   retype p exactly

Ctrl+C while waiting, a cancelled context, or closed stdin all count as a
decline.

# CI Environments

When stdin is not a terminal and CI or JENKINS_URL is set, the gate
proceeds without prompting. This is fail-open: unattended pipelines run the
guarded action. Set Request.CI to CIDeny to halt instead, or CIForce to skip
the prompt unconditionally.

# Concurrency

Each call blocks on one line of input. Calls sharing a stdin must be
serialized by the caller.
*/
package klaxon
