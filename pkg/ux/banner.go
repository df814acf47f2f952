// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/common-nighthawk/go-figure"
)

// DefaultBannerFont is the figlet font used when none is configured.
const DefaultBannerFont = "big"

// BannerRenderer turns a short text into multi-line block letters.
type BannerRenderer interface {
	Render(text string) string
}

// BannerFunc adapts a plain function to BannerRenderer.
type BannerFunc func(text string) string

// Render implements BannerRenderer.
func (f BannerFunc) Render(text string) string {
	return f(text)
}

// FigletBanner renders banners with go-figure.
//
// # Description
//
// Characters the font does not cover are skipped rather than aborting the
// program (go-figure's non-strict mode).
//
// # Example
//
//	b := NewFigletBanner("")
//	fmt.Fprint(os.Stderr, b.Render("Delete"))
type FigletBanner struct {
	font string
}

// NewFigletBanner creates a renderer for the named font. An empty name
// selects DefaultBannerFont.
func NewFigletBanner(font string) *FigletBanner {
	if font == "" {
		font = DefaultBannerFont
	}
	return &FigletBanner{font: font}
}

// HasFont reports whether go-figure bundles the named font. Rendering with
// an unknown font panics inside go-figure.
func HasFont(font string) bool {
	_, err := figure.Asset("fonts/" + font + ".flf")
	return err == nil
}

// Render implements BannerRenderer.
func (b *FigletBanner) Render(text string) string {
	rows := figure.NewFigure(text, b.font, false).Slicify()
	return strings.Join(rows, "\n")
}

var _ BannerRenderer = (*FigletBanner)(nil)

// IndentBlock prefixes every line of block with indent after truncating the
// line to maxColumns display cells. maxColumns below 1 is treated as 1.
//
// A trailing newline in block does not produce an extra indented line.
func IndentBlock(block, indent string, maxColumns int) string {
	if maxColumns < 1 {
		maxColumns = 1
	}
	block = strings.TrimSuffix(block, "\n")
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = indent + TruncateColumns(strings.TrimSuffix(line, "\r"), maxColumns)
	}
	return strings.Join(lines, "\n")
}

// TruncateColumns cuts line to at most n display cells.
func TruncateColumns(line string, n int) string {
	return ansi.Truncate(line, n, "")
}
