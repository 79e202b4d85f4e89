// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "xsdvis"

type metrics struct {
	registry      *prometheus.Registry
	renders       *prometheus.CounterVec
	failures      *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Schemas rendered, by output format.",
		}, []string{"format"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "parse_failures_total",
			Help:      "Submitted documents that could not be parsed, by reason.",
		}, []string{"reason"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_lookups_total",
			Help:      "Parsed schema cache lookups, by result.",
		}, []string{"result"}),
		renderSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering and translating a schema.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
	}
	m.registry.MustRegister(m.renders, m.failures, m.cacheLookups, m.renderSeconds)
	return m
}
