package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nowcast_fetch_total",
			Help: "Total number of nowcast fetch+extract attempts.",
		},
		[]string{"source", "outcome"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nowcast_fetch_duration_seconds",
			Help:    "Duration of nowcast fetch+extract attempts.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"source"},
	)

	CompositePercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nowcast_composite_percent",
			Help: "Most recently computed composite GDP nowcast, in percent.",
		},
	)
)

// ObserveFetch records one fetch attempt for a source.
func ObserveFetch(source, outcome string, elapsed time.Duration) {
	FetchTotal.WithLabelValues(source, outcome).Inc()
	FetchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// SetComposite records the latest composite value.
func SetComposite(v float64) {
	CompositePercent.Set(v)
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
