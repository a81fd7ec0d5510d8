// Copyright 2025 The Liftoff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes lifecycle pipeline activity as Prometheus
// metrics. A Collector subscribes to an App's event stream and records
// phase durations and outcomes; the caller decides which registry serves
// them.
package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/liftoff-sh/liftoff"
)

// Collector records lifecycle events as Prometheus metrics.
type Collector struct {
	bootsTotal    *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	exitsTotal    *prometheus.CounterVec
}

// NewCollector creates a Collector. The namespace prefixes every metric
// name; use the binary's name.
func NewCollector(namespace string) *Collector {
	return &Collector{
		bootsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "lifecycle",
				Name:      "boots_total",
				Help:      "Completed boot pipelines by outcome.",
			},
			[]string{"status"},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "lifecycle",
				Name:      "phase_duration_seconds",
				Help:      "Lifecycle phase duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"phase", "status"},
		),
		exitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "lifecycle",
				Name:      "exits_total",
				Help:      "Process exits by code.",
			},
			[]string{"code"},
		),
	}
}

// Register registers the collector's metrics with the given registerer.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.bootsTotal, c.phaseDuration, c.exitsTotal} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Observe subscribes the collector to the App's event stream. Call before
// Boot so no phase transition is missed.
func (c *Collector) Observe(app *liftoff.App) {
	app.OnEvent(liftoff.EventPhaseCompleted, func(ctx context.Context, e *liftoff.Event) {
		c.phaseDuration.WithLabelValues(string(e.Phase), "ok").Observe(e.Duration.Seconds())
	})
	app.OnEvent(liftoff.EventPhaseFailed, func(ctx context.Context, e *liftoff.Event) {
		c.phaseDuration.WithLabelValues(string(e.Phase), "error").Observe(e.Duration.Seconds())
	})
	app.OnEvent(liftoff.EventBootCompleted, func(ctx context.Context, e *liftoff.Event) {
		c.bootsTotal.WithLabelValues("ok").Inc()
	})
	app.OnEvent(liftoff.EventBootFailed, func(ctx context.Context, e *liftoff.Event) {
		c.bootsTotal.WithLabelValues("error").Inc()
	})
	app.OnEvent(liftoff.EventExit, func(ctx context.Context, e *liftoff.Event) {
		c.exitsTotal.WithLabelValues(strconv.Itoa(e.Code)).Inc()
	})
}
