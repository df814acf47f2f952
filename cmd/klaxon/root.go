// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/klaxon/pkg/klaxon"
	"github.com/AleutianAI/klaxon/pkg/logging"
	"github.com/AleutianAI/klaxon/pkg/ux"
)

// rootOptions holds the parsed command line flags.
type rootOptions struct {
	banner      string
	description string
	color       string
	mode        string
	ci          string
	font        string
	plain       bool
	logLevel    string
	logJSON     bool
	metricsFile string
	traceFile   string
}

// app is one CLI invocation bound to its streams.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	opts     rootOptions
	exitCode int

	// gateOptions are appended after the CLI's own gate options.
	gateOptions []klaxon.Option
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

// execute parses args, runs the gate and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 2
	}
	return a.exitCode
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "klaxon [flags] [--] [command [args...]]",
		Short: "Ask for confirmation before running a dangerous command",
		Long: `Shows an optional block-letter banner and description, then asks the
operator to confirm. With a command, the command runs only on approval and
klaxon exits with its status; a declined gate prints "Skipping." and exits 0.
Without a command, a declined gate prints "Exiting." and exits 1.

In CI (stdin is not a terminal and CI or JENKINS_URL is set) the prompt is
skipped and the gate approves unless --ci=false is given.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&a.opts.banner, "banner", "b", "", "Banner text shown in block letters")
	flags.StringVarP(&a.opts.description, "description", "d", "", "Description shown under the banner")
	flags.StringVarP(&a.opts.color, "color", "c", "", "Color of banner, description and notices (e.g. red, light_yellow, #ff8800)")
	flags.StringVarP(&a.opts.mode, "type", "t", "enter", `Challenge: enter, yesno, random, or a literal phrase to type`)
	flags.StringVar(&a.opts.ci, "ci", "auto", "CI handling: auto, true (never prompt) or false (deny in CI)")
	flags.StringVar(&a.opts.font, "font", ux.DefaultBannerFont, "Figlet font for the banner")
	flags.BoolVar(&a.opts.plain, "plain", false, "Disable color")
	flags.StringVar(&a.opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.opts.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&a.opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	flags.StringVar(&a.opts.traceFile, "trace-file", "", "Write OpenTelemetry spans to this file as JSON")

	return cmd
}

// buildRequest maps the flags onto a gate request.
func (o rootOptions) buildRequest() (klaxon.Request, error) {
	if !ux.HasFont(o.font) {
		return klaxon.Request{}, fmt.Errorf("--font: unknown figlet font %q", o.font)
	}
	ci, err := klaxon.ParseCIOverride(o.ci)
	if err != nil {
		return klaxon.Request{}, fmt.Errorf("--ci: %w", err)
	}
	return klaxon.Request{
		Banner:      o.banner,
		Description: o.description,
		Color:       ux.ParseColor(o.color),
		Mode:        klaxon.ParseMode(o.mode),
		CI:          ci,
	}, nil
}

func (o rootOptions) buildLogger(w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return logging.New(logging.Config{
		Level:   level,
		Service: "klaxon",
		JSON:    o.logJSON,
		Output:  w,
	}), nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	req, err := a.opts.buildRequest()
	if err != nil {
		return err
	}
	logger, err := a.opts.buildLogger(a.stderr)
	if err != nil {
		return err
	}

	if !req.Color.Recognized() {
		logger.Warn("unknown color, output will not be colored", "color", string(req.Color))
	}

	if a.opts.traceFile != "" {
		shutdown, err := initTracing(a.opts.traceFile, version)
		if err != nil {
			return fmt.Errorf("--trace-file: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("trace file not written", "path", a.opts.traceFile, "error", err)
			}
		}()
	}

	if a.opts.plain {
		ux.SetPersonalityLevel(ux.PersonalityMachine)
	} else {
		ux.InitPersonality()
	}

	opts := []klaxon.Option{
		klaxon.WithInput(a.stdin),
		klaxon.WithOutput(a.stderr),
		klaxon.WithBanner(ux.NewFigletBanner(a.opts.font)),
		klaxon.WithLogger(logger),
		klaxon.WithExit(func(code int) { a.exitCode = code }),
	}
	gate := klaxon.New(append(opts, a.gateOptions...)...)

	ctx := cmd.Context()
	if len(args) == 0 {
		gate.Alert(ctx, req)
	} else {
		a.exitCode = a.guardCommand(ctx, gate, req, args, logger)
	}

	a.writeMetrics(logger)
	return nil
}

// guardCommand runs args behind the gate and returns the exit code.
func (a *app) guardCommand(ctx context.Context, gate *klaxon.Gate, req klaxon.Request, args []string, logger *logging.Logger) int {
	ran, err := gate.Run(ctx, req, func(ctx context.Context) error {
		logger.Info("running guarded command", "command", args[0])
		return runCommand(ctx, args, a.stdin, a.stdout, a.stderr)
	})
	if !ran || err == nil {
		return 0
	}

	code := exitCodeOf(err)
	if !isExitStatus(err) {
		logger.Error("guarded command failed to start", "command", args[0], "error", err)
		fmt.Fprintf(a.stderr, "klaxon: %v\n", err)
	}
	return code
}

func (a *app) writeMetrics(logger *logging.Logger) {
	if a.opts.metricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(a.opts.metricsFile, prometheus.DefaultGatherer); err != nil {
		logger.Warn("metrics file not written", "path", a.opts.metricsFile, "error", err)
	}
}
