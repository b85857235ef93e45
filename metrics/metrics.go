// Package metrics exposes the gateway's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Searches         *prometheus.CounterVec
	Fallbacks        *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gigstar",
			Name:      "searches_total",
			Help:      "Search requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		Fallbacks: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "gigstar",
			Name:      "mock_fallbacks_total",
			Help:      "Mock-data fallbacks by provider and reason.",
		}, []string{"provider", "reason"}),
		UpstreamDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gigstar",
			Name:      "upstream_request_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "op"}),
	}
}
