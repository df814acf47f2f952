// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package klaxon

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ==============================================================================
// Prometheus Metrics
// ==============================================================================

var (
	// alertsTotal counts gate resolutions by challenge mode and reason
	alertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "klaxon_alerts_total",
		Help: "Total gate resolutions by challenge mode and reason",
	}, []string{"mode", "reason"})

	// promptWaitSeconds tracks how long the operator took to answer
	promptWaitSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "klaxon_prompt_wait_seconds",
		Help:    "Time between showing the challenge and receiving an answer",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2m
	}, []string{"mode"})

	// actionsTotal counts guarded actions by result
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "klaxon_actions_total",
		Help: "Total guarded actions run after approval by result",
	}, []string{"result"})
)

// tracerName is the instrumentation scope of gate spans.
const tracerName = "klaxon.gate"

// tracer resolves the global provider per call so a provider installed after
// package init is honored.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
