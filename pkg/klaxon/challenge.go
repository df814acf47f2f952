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

// Prompt texts.
const (
	promptEnter = "To continue, press ENTER. To abort, press Ctrl+C..."
	promptYesNo = "Continue? [y/N]: "
)

// randomTokenBytes is the number of random bytes behind a ModeRandom token
// (four hex digits).
const randomTokenBytes = 2

// Challenge is the prompt and validator built for one gate invocation.
type Challenge struct {
	// Prompt is written to the output stream verbatim.
	Prompt string

	// Validate reports whether the answer (line terminator removed) accepts
	// the challenge.
	Validate func(input string) bool
}

// NewChallenge builds the challenge for mode. randomHex is only called for
// ModeRandom, once.
//
// # Description
//
// For ModeRandom the token is the upper-cased hex string, shown with a space
// between characters ("A 1 B 2"). The answer is compared after removing all
// whitespace and upper-casing, so "a1b2" and "A 1 B 2" are both accepted.
//
// For ModePhrase the answer must equal the phrase byte for byte.
//
// # Outputs
//
//   - Challenge: Never has a nil Validate.
func NewChallenge(mode Mode, randomHex func(n int) string) Challenge {
	switch mode.kind {
	case modeYesNo:
		return Challenge{
			Prompt: promptYesNo,
			Validate: func(input string) bool {
				switch strings.ToLower(input) {
				case "y", "yes":
					return true
				}
				return false
			},
		}

	case modeRandom:
		token := strings.ToUpper(randomHex(randomTokenBytes))
		return Challenge{
			Prompt: fmt.Sprintf("To continue, type %s\n> ", spaceOut(token)),
			Validate: func(input string) bool {
				return strings.ToUpper(stripWhitespace(input)) == token
			},
		}

	case modePhrase:
		phrase := mode.phrase
		return Challenge{
			Prompt: fmt.Sprintf("To continue, type \"%s\"\n> ", phrase),
			Validate: func(input string) bool {
				return input == phrase
			},
		}

	default:
		return Challenge{
			Prompt:   promptEnter,
			Validate: func(string) bool { return true },
		}
	}
}

// spaceOut puts a single space between the characters of s.
func spaceOut(s string) string {
	chars := strings.Split(s, "")
	return strings.Join(chars, " ")
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
