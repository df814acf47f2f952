// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/klaxon/pkg/logging"
	"github.com/AleutianAI/klaxon/pkg/ux"
)

// bannerIndent prefixes every banner line.
const bannerIndent = "    "

// Notices written when the gate halts.
const (
	noticeSkipping = "\nSkipping."
	noticeExiting  = "\nExiting."
)

// CI environment indicators. Only consulted when stdin is not a terminal.
var ciEnvVars = []string{"CI", "JENKINS_URL"}

// =============================================================================
// Gate
// =============================================================================

// Gate is a confirmation gate bound to a pair of streams and its terminal
// collaborators.
//
// # Description
//
// A Gate holds no per-invocation state. Each Decide, Alert, Run or Guard
// call builds its own challenge, performs at most one read and returns.
//
// # Thread Safety
//
// Calls may come from any goroutine, but calls sharing an input stream must
// be serialized: two concurrent reads of one stdin interleave unpredictably.
//
// # Example
//
//	gate := klaxon.New(klaxon.WithLogger(logger))
//	ok, err := gate.Run(ctx, klaxon.Request{Mode: klaxon.ModeYesNo}, dropTables)
type Gate struct {
	in            io.Reader
	out           io.Writer
	getenv        func(string) string
	stdinTerminal func() bool
	banner        ux.BannerRenderer
	width         func() int
	colorizer     ux.Colorizer
	randomHex     func(n int) string
	interrupts    InterruptSource
	exit          func(code int)
	logger        *logging.Logger
}

// New creates a Gate. Without options it reads os.Stdin, writes os.Stderr,
// detects CI from the process environment and exits with os.Exit.
func New(opts ...Option) *Gate {
	g := &Gate{
		in:            os.Stdin,
		out:           os.Stderr,
		getenv:        os.Getenv,
		stdinTerminal: ux.StdinIsTerminal,
		banner:        ux.NewFigletBanner(""),
		width:         ux.TerminalWidth,
		randomHex:     ux.RandomHex,
		interrupts:    SignalInterrupts,
		exit:          os.Exit,
		logger:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.colorizer == nil {
		g.colorizer = ux.NewStyleColorizer(g.out)
	}
	return g
}

var (
	defaultGate     *Gate
	defaultGateOnce sync.Once
)

// Default returns the process-wide gate on stdin/stderr.
func Default() *Gate {
	defaultGateOnce.Do(func() {
		defaultGate = New()
	})
	return defaultGate
}

// Alert runs the bare gate on Default(). See Gate.Alert.
func Alert(ctx context.Context, req Request) bool {
	return Default().Alert(ctx, req)
}

// Run guards action with Default(). See Gate.Run.
func Run(ctx context.Context, req Request, action func(context.Context) error) (bool, error) {
	return Default().Run(ctx, req, action)
}

// =============================================================================
// Entry Points
// =============================================================================

// Alert is the bare gate: a declined gate ends the process.
//
// # Description
//
// Resolves req with Decide. On proceed it returns true. On halt it writes
// "Exiting." and calls the exit function with status 1; with the default
// os.Exit this call does not return.
//
// # Outputs
//
//   - bool: true when the operator approved or CI bypassed the prompt.
//     false is only observable when WithExit installed a returning exit.
func (g *Gate) Alert(ctx context.Context, req Request) bool {
	if g.Decide(ctx, req).Proceed {
		return true
	}
	g.write(noticeExiting + "\n")
	g.exit(1)
	return false
}

// Run guards an action without a result. See Guard.
func (g *Gate) Run(ctx context.Context, req Request, action func(context.Context) error) (bool, error) {
	var fn func(context.Context) (struct{}, error)
	if action != nil {
		fn = func(ctx context.Context) (struct{}, error) {
			return struct{}{}, action(ctx)
		}
	}
	_, ok, err := Guard(ctx, g, req, fn)
	return ok, err
}

// Guard runs action only if the gate proceeds.
//
// # Description
//
// On proceed, action is called and its result and error are returned
// unchanged with ok == true. On halt, a colored "Skipping." is written,
// action is never called, and Guard returns the zero T, false, nil.
//
// A nil action makes Guard behave like g.Alert.
//
// # Inputs
//
//   - ctx: Cancels the prompt (treated as a decline) and is passed to action.
//   - g: The gate.
//   - req: Banner, description, color, challenge mode and CI override.
//   - action: The guarded operation.
//
// # Outputs
//
//   - T: action's result, or the zero value when not run.
//   - bool: Whether action ran.
//   - error: action's error, never one of the gate's own.
//
// # Example
//
//	n, ok, err := klaxon.Guard(ctx, gate, req, func(ctx context.Context) (int, error) {
//	    return repo.PurgeAll(ctx)
//	})
func Guard[T any](ctx context.Context, g *Gate, req Request, action func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	if action == nil {
		return zero, g.Alert(ctx, req), nil
	}

	if !g.Decide(ctx, req).Proceed {
		g.write(g.colorizer.Colorize(noticeSkipping, req.Color) + "\n")
		return zero, false, nil
	}

	ctx, span := tracer().Start(ctx, "klaxon.Guard.action")
	defer span.End()

	result, err := action(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "guarded action failed")
		actionsTotal.WithLabelValues("error").Inc()
	} else {
		actionsTotal.WithLabelValues("ok").Inc()
	}
	return result, true, err
}

// =============================================================================
// Decision
// =============================================================================

// Decide resolves a request to proceed or halt.
//
// # Description
//
// Steps, in order:
//
//  1. CIForce: proceed with nothing displayed.
//  2. stdin is not a terminal and CI or JENKINS_URL is set: proceed, or
//     halt without reading when req.CI is CIDeny.
//  3. Display the banner and description, write the challenge prompt and
//     read one line. Interrupts, context cancellation and closed input
//     halt; otherwise the challenge validator decides.
//
// Decide never runs an action, never writes halt notices and never exits.
//
// # Outputs
//
//   - Outcome: Proceed and the Reason for it.
func (g *Gate) Decide(ctx context.Context, req Request) Outcome {
	alertID := uuid.NewString()
	ctx, span := tracer().Start(ctx, "klaxon.Gate.Decide",
		trace.WithAttributes(
			attribute.String("alert_id", alertID),
			attribute.String("mode", req.Mode.String()),
			attribute.String("ci", req.CI.String()),
		),
	)
	defer span.End()

	logger := g.logger.With("alert_id", alertID, "mode", req.Mode.String())

	outcome := g.decide(ctx, req, logger)

	alertsTotal.WithLabelValues(req.Mode.String(), string(outcome.Reason)).Inc()
	span.SetAttributes(
		attribute.Bool("proceed", outcome.Proceed),
		attribute.String("reason", string(outcome.Reason)),
	)
	logger.Debug("gate resolved", "proceed", outcome.Proceed, "reason", string(outcome.Reason))
	return outcome
}

func (g *Gate) decide(ctx context.Context, req Request, logger *logging.Logger) Outcome {
	if req.CI == CIForce {
		return proceed(ReasonCIForced)
	}

	if !g.stdinTerminal() && g.ciDetected() {
		if req.CI == CIDeny {
			return halt(ReasonCIDenied)
		}
		return proceed(ReasonCIDetected)
	}

	g.display(req)

	challenge := NewChallenge(req.Mode, g.randomHex)
	g.write(challenge.Prompt)
	logger.Debug("waiting for answer")

	start := time.Now()
	answer := readAnswer(ctx, g.in, g.interrupts)
	promptWaitSeconds.WithLabelValues(req.Mode.String()).Observe(time.Since(start).Seconds())

	switch answer.Status {
	case ReadInterrupted:
		return halt(ReasonInterrupted)
	case ReadClosed:
		return halt(ReasonInputClosed)
	}

	if challenge.Validate(answer.Line) {
		return proceed(ReasonAccepted)
	}
	return halt(ReasonRejected)
}

func (g *Gate) ciDetected() bool {
	for _, name := range ciEnvVars {
		if g.getenv(name) != "" {
			return true
		}
	}
	return false
}

// display writes the banner and description blocks.
func (g *Gate) display(req Request) {
	if req.Banner != "" {
		block := ux.IndentBlock(g.banner.Render(req.Banner), bannerIndent, g.width()-len(bannerIndent))
		g.write("\n" + g.colorizer.Colorize(block, req.Color) + "\n\n")
	}

	if req.Description != "" {
		text := g.colorizer.Colorize(req.Description, req.Color)
		if !strings.HasSuffix(req.Description, "\n") {
			text += "\n"
		}
		g.write(text)
	}
}

// write sends s to the output stream and flushes buffered writers so the
// prompt is visible before the read blocks. Write errors are ignored.
func (g *Gate) write(s string) {
	_, _ = io.WriteString(g.out, s)
	if f, ok := g.out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
