// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"fmt"
	"strings"
)

// =============================================================================
// Challenge Modes
// =============================================================================

type modeKind int

const (
	modeEnter modeKind = iota
	modeYesNo
	modeRandom
	modePhrase
)

// Mode selects the challenge presented to the operator.
//
// The zero Mode is ModeEnter.
type Mode struct {
	kind   modeKind
	phrase string
}

var (
	// ModeEnter accepts any line, including an empty one.
	ModeEnter = Mode{kind: modeEnter}

	// ModeYesNo accepts "y" or "yes" in any case.
	ModeYesNo = Mode{kind: modeYesNo}

	// ModeRandom asks the operator to retype a fresh random token.
	ModeRandom = Mode{kind: modeRandom}
)

// ModePhrase asks the operator to type phrase exactly.
func ModePhrase(phrase string) Mode {
	return Mode{kind: modePhrase, phrase: phrase}
}

// ParseMode maps a flag value onto a Mode. "", "enter", "yesno" and
// "random" select the built-in modes; any other string is a literal phrase.
func ParseMode(s string) Mode {
	switch s {
	case "", "enter":
		return ModeEnter
	case "yesno":
		return ModeYesNo
	case "random":
		return ModeRandom
	default:
		return ModePhrase(s)
	}
}

// Phrase returns the literal phrase of a ModePhrase value.
func (m Mode) Phrase() (string, bool) {
	return m.phrase, m.kind == modePhrase
}

// String returns the mode name. Phrases report "phrase", never the phrase.
func (m Mode) String() string {
	switch m.kind {
	case modeYesNo:
		return "yesno"
	case modeRandom:
		return "random"
	case modePhrase:
		return "phrase"
	default:
		return "enter"
	}
}

// =============================================================================
// CI Override
// =============================================================================

// CIOverride controls how the gate treats continuous-integration runs.
//
// The zero value CIAuto bypasses the prompt when stdin is not a terminal and
// CI or JENKINS_URL is set. That default is fail-open: unattended jobs run the
// guarded action without confirmation. Use CIDeny for actions that must never
// run unattended.
type CIOverride int

const (
	// CIAuto detects CI from the environment.
	CIAuto CIOverride = iota

	// CIForce behaves as if running in CI: no display, no prompt, proceed.
	CIForce

	// CIDeny halts when CI is detected instead of proceeding.
	CIDeny
)

// ParseCIOverride parses a flag value.
func ParseCIOverride(s string) (CIOverride, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CIAuto, nil
	case "true", "yes", "1", "force":
		return CIForce, nil
	case "false", "no", "0", "deny":
		return CIDeny, nil
	default:
		return CIAuto, fmt.Errorf("invalid ci override %q (want auto, true or false)", s)
	}
}

// String returns the flag spelling of the override.
func (c CIOverride) String() string {
	switch c {
	case CIForce:
		return "true"
	case CIDeny:
		return "false"
	default:
		return "auto"
	}
}
