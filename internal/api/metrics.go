// ./internal/api/metrics.go
package api

/*
Package api provides Prometheus metrics for the HTTP surface.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on /metrics. Each instance owns its
// registry so several routers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Chart metrics
	Charts          *prometheus.CounterVec
	ChartDuration   prometheus.Histogram
	DegradedCharts  prometheus.Counter
	AyanamsaLookups *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with every collector registered
// under namespace ("jyotish" when empty).
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "jyotish"
	}
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Charts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "computed_total",
			Help:      "Total number of chart requests by ayanamsa mode and outcome",
		}, []string{"mode", "outcome"}),
		ChartDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "duration_seconds",
			Help:      "Chart computation latency",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		DegradedCharts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chart",
			Name:      "degraded_total",
			Help:      "Total number of charts computed on the approximate fallback",
		}),
		AyanamsaLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ayanamsa",
			Name:      "lookups_total",
			Help:      "Total number of ayanamsa endpoint lookups by standard and outcome",
		}, []string{"standard", "outcome"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) observeRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) observeChart(mode, outcome string, degraded bool, seconds float64) {
	if m == nil {
		return
	}
	m.Charts.WithLabelValues(mode, outcome).Inc()
	if outcome == "ok" {
		m.ChartDuration.Observe(seconds)
	}
	if degraded {
		m.DegradedCharts.Inc()
	}
}

func (m *Metrics) observeAyanamsa(standard, outcome string) {
	if m == nil {
		return
	}
	m.AyanamsaLookups.WithLabelValues(standard, outcome).Inc()
}
