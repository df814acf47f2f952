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
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// FigletBanner Tests
// =============================================================================

func TestFigletBanner_DefaultFont(t *testing.T) {
	assert.Equal(t, NewFigletBanner(DefaultBannerFont).Render("Hi"), NewFigletBanner("").Render("Hi"))
	assert.NotEqual(t, NewFigletBanner("standard").Render("Hi"), NewFigletBanner("").Render("Hi"))
}

func TestFigletBanner_RendersBlockLetters(t *testing.T) {
	out := NewFigletBanner("").Render("Delete")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3, "block letters span several rows")
	assert.NotContains(t, out, "Delete", "text is drawn, not printed")
}

func TestBannerFunc(t *testing.T) {
	b := BannerFunc(strings.ToUpper)
	assert.Equal(t, "WARN", b.Render("warn"))
}

// =============================================================================
// IndentBlock Tests
// =============================================================================

func TestIndentBlock_IndentsEveryLine(t *testing.T) {
	got := IndentBlock("ab\ncd\n", "    ", 10)
	assert.Equal(t, "    ab\n    cd", got)
}

func TestIndentBlock_TruncatesBeforeIndent(t *testing.T) {
	got := IndentBlock("abcdefgh\nxy", "    ", 4)
	assert.Equal(t, "    abcd\n    xy", got)
}

func TestIndentBlock_MinimumWidth(t *testing.T) {
	got := IndentBlock("abc", "  ", -3)
	assert.Equal(t, "  a", got)
}

func TestIndentBlock_StripsCarriageReturns(t *testing.T) {
	got := IndentBlock("ab\r\ncd", "", 10)
	assert.Equal(t, "ab\ncd", got)
}

func TestTruncateColumns(t *testing.T) {
	assert.Equal(t, "hel", TruncateColumns("hello", 3))
	assert.Equal(t, "hello", TruncateColumns("hello", 10))
	assert.Equal(t, "", TruncateColumns("", 10))
}

// =============================================================================
// Terminal Helpers Tests
// =============================================================================

func TestRandomHex(t *testing.T) {
	a := RandomHex(2)
	require.Len(t, a, 4)
	_, err := hex.DecodeString(a)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(a), a)

	assert.Len(t, RandomHex(16), 32)
}

func TestRandomHex_Fresh(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		seen[RandomHex(16)] = true
	}
	assert.Len(t, seen, 8)
}

func TestTerminalWidth_Positive(t *testing.T) {
	assert.Greater(t, TerminalWidth(), 0)
}

func TestHasFont(t *testing.T) {
	assert.True(t, HasFont(DefaultBannerFont))
	assert.True(t, HasFont("standard"))
	assert.False(t, HasFont("no-such-font"))
}
