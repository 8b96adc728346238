// Package metrics exposes the Prometheus instrumentation for the map service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ortemap_requests_total",
		Help: "Total HTTP requests by path and status",
	}, []string{"path", "status"})

	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ortemap_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})

	DatasetLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ortemap_dataset_loads_total",
		Help: "Dataset load attempts by result (ok, transport, schema, fault)",
	}, []string{"result"})

	PlacesLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ortemap_places_loaded",
		Help: "Number of place records in the current session",
	})

	RegionsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ortemap_regions_loaded",
		Help: "Number of distinct regions in the current session",
	})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDurationMs,
		DatasetLoadsTotal,
		PlacesLoaded,
		RegionsLoaded,
	)
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
