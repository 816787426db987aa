// pkg/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var (
	validationTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "config_validation_seconds",
			Help:    "configuration validation time.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	totalRegistrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "filter_registrations_total", Help: "filter registrations by outcome"},
		[]string{"outcome"},
	)

	totalEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "events_processed_total", Help: "events passed through the filter"},
	)
)

func init() {
	prometheus.MustRegister(
		validationTime,
		totalRegistrations,
		totalEventsProcessed,
	)
}

// ObserveRegistration records one registration attempt and its validation time.
func ObserveRegistration(ok bool, d time.Duration) {
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	totalRegistrations.WithLabelValues(outcome).Inc()
	validationTime.Observe(d.Seconds())
}

func IncEventsProcessed() { totalEventsProcessed.Inc() }

// ProvideMetrics exposes the prometheus handler for the host to mount.
func ProvideMetrics() http.Handler { return promhttp.Handler() }

var Module = fx.Options(
	fx.Provide(ProvideMetrics),
)
