// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides the terminal collaborators used by the klaxon gate:
// color, banner rendering, terminal geometry and random tokens.
package ux

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a color tag applied to a whole warning block.
//
// Named tags follow the classic ANSI names ("red", "light_yellow", ...).
// Any other non-empty value is handed to lipgloss verbatim, so "#E74C3C"
// and "196" also work. The empty Color means "no color".
type Color string

// Named ANSI colors.
const (
	ColorNone         Color = ""
	ColorDefault      Color = "default"
	ColorBlack        Color = "black"
	ColorRed          Color = "red"
	ColorGreen        Color = "green"
	ColorYellow       Color = "yellow"
	ColorBlue         Color = "blue"
	ColorMagenta      Color = "magenta"
	ColorCyan         Color = "cyan"
	ColorWhite        Color = "white"
	ColorLightBlack   Color = "light_black"
	ColorLightRed     Color = "light_red"
	ColorLightGreen   Color = "light_green"
	ColorLightYellow  Color = "light_yellow"
	ColorLightBlue    Color = "light_blue"
	ColorLightMagenta Color = "light_magenta"
	ColorLightCyan    Color = "light_cyan"
	ColorLightWhite   Color = "light_white"
)

// ansiIndex maps named tags onto the 16-color ANSI table.
var ansiIndex = map[Color]string{
	ColorBlack:        "0",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorLightBlack:   "8",
	ColorLightRed:     "9",
	ColorLightGreen:   "10",
	ColorLightYellow:  "11",
	ColorLightBlue:    "12",
	ColorLightMagenta: "13",
	ColorLightCyan:    "14",
	ColorLightWhite:   "15",
}

// ParseColor normalizes a user supplied tag ("Light-Red" -> "light_red").
// Unknown names are returned unchanged for lipgloss to interpret.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	norm := Color(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if norm == ColorDefault {
		return ColorDefault
	}
	if _, ok := ansiIndex[norm]; ok {
		return norm
	}
	return Color(s)
}

// Named reports whether c is one of the ANSI names.
func (c Color) Named() bool {
	_, ok := ansiIndex[c]
	return ok || c == ColorDefault
}

// Recognized reports whether c renders as a color: empty, a named tag, a
// "#RGB" or "#RRGGBB" hex value, or a 256-color index. lipgloss silently
// drops anything else.
func (c Color) Recognized() bool {
	if c == ColorNone || c.Named() {
		return true
	}
	s := string(c)
	if hexDigits, ok := strings.CutPrefix(s, "#"); ok {
		if len(hexDigits) != 3 && len(hexDigits) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hexDigits, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// terminalColor converts the tag into a lipgloss color. ok is false for
// ColorNone and ColorDefault, which both leave the text untouched.
func (c Color) terminalColor() (lipgloss.TerminalColor, bool) {
	switch c {
	case ColorNone, ColorDefault:
		return nil, false
	}
	if idx, found := ansiIndex[c]; found {
		return lipgloss.Color(idx), true
	}
	return lipgloss.Color(string(c)), true
}

// =============================================================================
// Colorizer
// =============================================================================

// Colorizer wraps text in a color tag.
type Colorizer interface {
	Colorize(text string, color Color) string
}

// ColorizerFunc adapts a plain function to Colorizer.
type ColorizerFunc func(text string, color Color) string

// Colorize implements Colorizer.
func (f ColorizerFunc) Colorize(text string, color Color) string {
	return f(text, color)
}

// PlainColorizer returns text unchanged.
var PlainColorizer Colorizer = ColorizerFunc(func(text string, _ Color) string {
	return text
})

// StyleColorizer colors text with lipgloss.
//
// # Description
//
// The renderer is bound to the stream the text will be written to, so the
// color profile is detected for that stream: a pipe or a file gets plain
// text, a terminal gets escape codes, and NO_COLOR is honored.
//
// Text is styled one line at a time. Styling a multi-line block in one
// Render call would pad every line to the widest one, and the description
// text must keep its line breaks and whitespace verbatim.
//
// # Thread Safety
//
// Safe for concurrent use; lipgloss styles are values.
type StyleColorizer struct {
	renderer *lipgloss.Renderer
}

// NewStyleColorizer creates a colorizer for output written to w.
func NewStyleColorizer(w io.Writer) *StyleColorizer {
	return &StyleColorizer{renderer: lipgloss.NewRenderer(w)}
}

// NewStyleColorizerWithRenderer uses an existing renderer. Tests use it to
// force a color profile.
func NewStyleColorizerWithRenderer(r *lipgloss.Renderer) *StyleColorizer {
	return &StyleColorizer{renderer: r}
}

// Colorize implements Colorizer.
func (c *StyleColorizer) Colorize(text string, color Color) string {
	if !ShouldShowColors() {
		return text
	}
	fg, ok := color.terminalColor()
	if !ok {
		return text
	}
	style := c.renderer.NewStyle().
		Foreground(fg).
		TabWidth(lipgloss.NoTabConversion)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

var _ Colorizer = (*StyleColorizer)(nil)
