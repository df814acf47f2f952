// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"strings"
	"sync"
)

// PersonalityEnv names the environment variable read by InitPersonality.
const PersonalityEnv = "KLAXON_PERSONALITY"

// PersonalityLevel defines how rich the warning output is
type PersonalityLevel string

const (
	// PersonalityFull enables color on banners, descriptions and notices
	PersonalityFull PersonalityLevel = "full"

	// PersonalityMachine outputs plain text suitable for logs and scripts
	PersonalityMachine PersonalityLevel = "machine"
)

// Personality holds the current UX personality configuration
type Personality struct {
	// Level controls overall richness (full, machine)
	Level PersonalityLevel
}

var (
	currentPersonality = DefaultPersonality()
	personalityMu      sync.RWMutex
)

// GetPersonality returns the current personality settings
func GetPersonality() Personality {
	personalityMu.RLock()
	defer personalityMu.RUnlock()
	return currentPersonality
}

// SetPersonality updates the current personality settings
func SetPersonality(p Personality) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality = p
}

// SetPersonalityLevel updates just the personality level
func SetPersonalityLevel(level PersonalityLevel) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality.Level = level
}

// ParsePersonalityLevel converts a string to PersonalityLevel.
// "standard" and "minimal" are accepted as aliases of full; anything
// unrecognized is full.
func ParsePersonalityLevel(s string) PersonalityLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "machine", "plain", "quiet", "q":
		return PersonalityMachine
	default:
		return PersonalityFull
	}
}

// InitPersonality initializes personality from the environment.
//
// Unlike color detection, which lipgloss does per output stream, this is an
// explicit user choice and applies to every stream.
func InitPersonality() {
	if envLevel := os.Getenv(PersonalityEnv); envLevel != "" {
		SetPersonalityLevel(ParsePersonalityLevel(envLevel))
		return
	}
	SetPersonalityLevel(PersonalityFull)
}

// ShouldShowColors returns true if we should use colors
func ShouldShowColors() bool {
	p := GetPersonality()
	return p.Level != PersonalityMachine
}

// DefaultPersonality returns the default personality settings
func DefaultPersonality() Personality {
	return Personality{
		Level: PersonalityFull,
	}
}
