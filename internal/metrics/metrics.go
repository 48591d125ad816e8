// Package metrics exports the board's cache state to Prometheus. It is
// wired as a store subscriber: every cache change re-publishes the
// per-status counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/notiboard/notiboard/internal/view"
)

// Metrics holds all application metrics.
type Metrics struct {
	// Cache state
	CachedNotifications *prometheus.GaugeVec
	CacheSize           prometheus.Gauge

	// Sync outcomes
	RefreshesTotal prometheus.Counter
	RefreshErrors  prometheus.Counter
}

// New creates and registers all application metrics on the default
// registry.
func New(namespace string) *Metrics {
	return &Metrics{
		CachedNotifications: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cached_notifications",
			Help:      "Number of cached notification records per status",
		}, []string{"status"}),
		CacheSize: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_size",
			Help:      "Total number of cached notification records",
		}),
		RefreshesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "Total number of completed cache refreshes",
		}),
		RefreshErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refresh_errors_total",
			Help:      "Total number of failed cache refreshes",
		}),
	}
}

// RefreshSucceeded counts a completed cache refresh.
func (m *Metrics) RefreshSucceeded() {
	m.RefreshesTotal.Inc()
}

// RefreshFailed counts a cache refresh that errored.
func (m *Metrics) RefreshFailed() {
	m.RefreshErrors.Inc()
}

// Observe publishes the given per-status counts.
func (m *Metrics) Observe(stats view.Stats) {
	m.CachedNotifications.WithLabelValues("scheduled").Set(float64(stats.Scheduled))
	m.CachedNotifications.WithLabelValues("sent").Set(float64(stats.Sent))
	m.CachedNotifications.WithLabelValues("failed").Set(float64(stats.Failed))
	m.CachedNotifications.WithLabelValues("cancelled").Set(float64(stats.Cancelled))
	m.CacheSize.Set(float64(stats.Total))
}
