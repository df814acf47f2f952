// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"testing"
)

// =============================================================================
// GetPersonality / SetPersonality Tests
// =============================================================================

func TestSetPersonality_AndGet(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	SetPersonality(Personality{Level: PersonalityMachine})

	retrieved := GetPersonality()
	if retrieved.Level != PersonalityMachine {
		t.Errorf("expected level %v, got %v", PersonalityMachine, retrieved.Level)
	}
}

func TestSetPersonalityLevel(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	for _, level := range []PersonalityLevel{PersonalityFull, PersonalityMachine} {
		SetPersonalityLevel(level)
		if got := GetPersonality().Level; got != level {
			t.Errorf("expected level %v, got %v", level, got)
		}
	}
}

// =============================================================================
// ParsePersonalityLevel Tests
// =============================================================================

func TestParsePersonalityLevel(t *testing.T) {
	tests := []struct {
		input string
		want  PersonalityLevel
	}{
		{"full", PersonalityFull},
		{"F", PersonalityFull},
		{"standard", PersonalityFull},
		{"minimal", PersonalityFull},
		{"machine", PersonalityMachine},
		{"Machine", PersonalityMachine},
		{"plain", PersonalityMachine},
		{"quiet", PersonalityMachine},
		{" q ", PersonalityMachine},
		{"unknown", PersonalityFull},
		{"", PersonalityFull},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParsePersonalityLevel(tt.input); got != tt.want {
				t.Errorf("ParsePersonalityLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// =============================================================================
// InitPersonality Tests
// =============================================================================

func TestInitPersonality_FromEnv(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	t.Setenv(PersonalityEnv, "machine")
	InitPersonality()

	if GetPersonality().Level != PersonalityMachine {
		t.Errorf("expected machine personality, got %v", GetPersonality().Level)
	}
	if ShouldShowColors() {
		t.Error("machine personality should disable colors")
	}
}

func TestInitPersonality_AliasesKeepColor(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	for _, v := range []string{"standard", "minimal"} {
		t.Setenv(PersonalityEnv, v)
		InitPersonality()
		if !ShouldShowColors() {
			t.Errorf("%s should show colors", v)
		}
	}
}

func TestInitPersonality_Default(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)

	t.Setenv(PersonalityEnv, "")
	SetPersonalityLevel(PersonalityMachine)
	InitPersonality()

	if GetPersonality().Level != PersonalityFull {
		t.Errorf("expected full personality, got %v", GetPersonality().Level)
	}
	if !ShouldShowColors() {
		t.Error("full personality should show colors")
	}
}

func TestDefaultPersonality(t *testing.T) {
	if DefaultPersonality().Level != PersonalityFull {
		t.Errorf("expected default level full, got %v", DefaultPersonality().Level)
	}
}
