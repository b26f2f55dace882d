/*
Copyright © 2025 The vergate Authors
SPDX-License-Identifier: Apache-2.0
*/

package check

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// Policy check metrics
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vergate_check_duration_seconds",
			Help:    "Time taken to evaluate a complete policy",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vergate_check_total",
			Help: "Total number of policy check attempts",
		},
		[]string{"status"}, // pass, fail, partial, or error
	)

	checkComponentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vergate_check_components_total",
			Help: "Total number of component evaluations",
		},
		[]string{"status"}, // passed, failed, or skipped
	)

	checkComponentCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vergate_check_components",
			Help: "Number of components in the last checked policy",
		},
	)
)

// WriteMetrics writes all metrics gathered from the default registry to w
// in the Prometheus text exposition format. The process is short-lived, so
// metrics are dumped after a check rather than scraped.
func WriteMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %q: %w", mf.GetName(), err)
		}
	}
	return nil
}
