/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package hookreconciler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reconcileOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lintreview_hook_reconciliations_total",
		Help: "Webhook reconciliations by action and outcome",
	},
	[]string{"action", "outcome"},
)
