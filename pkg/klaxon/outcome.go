// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import "github.com/AleutianAI/klaxon/pkg/ux"

// Request describes one gate invocation. Empty Banner and Description are
// not displayed.
type Request struct {
	// Banner is rendered in block letters above the description.
	Banner string

	// Description is printed with its line breaks preserved.
	Description string

	// Color wraps the banner, the description and the "Skipping." notice.
	Color ux.Color

	// Mode selects the challenge. Zero value: ModeEnter.
	Mode Mode

	// CI overrides CI auto-detection. Zero value: CIAuto.
	CI CIOverride
}

// Reason explains why a gate resolved the way it did.
type Reason string

const (
	ReasonCIForced    Reason = "ci_forced"
	ReasonCIDetected  Reason = "ci_detected"
	ReasonCIDenied    Reason = "ci_denied"
	ReasonAccepted    Reason = "accepted"
	ReasonRejected    Reason = "rejected"
	ReasonInterrupted Reason = "interrupted"
	ReasonInputClosed Reason = "input_closed"
)

// Outcome is the resolution of a gate before any action runs.
type Outcome struct {
	// Proceed is true when the guarded action may run.
	Proceed bool

	// Reason is the branch that produced the outcome.
	Reason Reason
}

func proceed(r Reason) Outcome { return Outcome{Proceed: true, Reason: r} }

func halt(r Reason) Outcome { return Outcome{Proceed: false, Reason: r} }
