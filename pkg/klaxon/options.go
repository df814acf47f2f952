// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"io"

	"github.com/AleutianAI/klaxon/pkg/logging"
	"github.com/AleutianAI/klaxon/pkg/ux"
)

// Option configures a Gate at creation time.
type Option func(*Gate)

// WithInput sets the stream answers are read from. Default: os.Stdin.
func WithInput(r io.Reader) Option {
	return func(g *Gate) { g.in = r }
}

// WithOutput sets the stream warnings and prompts go to. Default: os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(g *Gate) { g.out = w }
}

// WithGetenv replaces os.Getenv for CI detection.
func WithGetenv(getenv func(string) string) Option {
	return func(g *Gate) { g.getenv = getenv }
}

// WithStdinTerminal replaces the stdin terminal probe.
func WithStdinTerminal(isTerminal func() bool) Option {
	return func(g *Gate) { g.stdinTerminal = isTerminal }
}

// WithBanner sets the banner renderer.
func WithBanner(b ux.BannerRenderer) Option {
	return func(g *Gate) { g.banner = b }
}

// WithWidth replaces the terminal width query.
func WithWidth(width func() int) Option {
	return func(g *Gate) { g.width = width }
}

// WithColorizer sets the colorizer. Default: a lipgloss colorizer bound to
// the output stream.
func WithColorizer(c ux.Colorizer) Option {
	return func(g *Gate) { g.colorizer = c }
}

// WithRandomHex replaces the random token source.
func WithRandomHex(randomHex func(n int) string) Option {
	return func(g *Gate) { g.randomHex = randomHex }
}

// WithInterrupts replaces the SIGINT subscription.
func WithInterrupts(src InterruptSource) Option {
	return func(g *Gate) { g.interrupts = src }
}

// WithExit replaces os.Exit for the bare gate's denial path.
func WithExit(exit func(code int)) Option {
	return func(g *Gate) { g.exit = exit }
}

// WithLogger sets the logger. Default: logging.Nop().
func WithLogger(l *logging.Logger) Option {
	return func(g *Gate) { g.logger = l }
}
