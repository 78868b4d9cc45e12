package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barcart_upstream_requests_total",
		Help: "Requests issued to the upstream cocktail API.",
	}, []string{"endpoint", "status"})

	UpstreamRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "barcart_upstream_request_duration_seconds",
		Help:    "Round-trip time of upstream cocktail API calls.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	PagesServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barcart_pages_served_total",
		Help: "Result pages served by the proxy API, by browse mode.",
	}, []string{"mode"})

	StaleResultsDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barcart_stale_results_discarded_total",
		Help: "Fetch results dropped because a newer view superseded them.",
	})

	FavoritesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "barcart_favorites_total",
		Help: "Number of saved favorites in the database.",
	})
)
