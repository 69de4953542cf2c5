/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package process

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lintreview_process_duration_seconds",
			Help:    "Wall time of external command invocations",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		},
		[]string{"command"},
	)

	runOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lintreview_process_runs_total",
			Help: "External command invocations by outcome",
		},
		[]string{"command", "outcome"},
	)
)
