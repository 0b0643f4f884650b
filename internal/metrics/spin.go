package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spinTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_requests_total",
			Help: "Total spin requests by result",
		},
		[]string{"result"},
	)

	spinDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spin_request_duration_ms",
			Help:    "Spin request duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result"},
	)

	spinPayout = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spin_payout_minor_units_total",
			Help: "Sum of prize amounts paid by spins",
		},
	)

	selectionFallback = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prize_selection_fallback_total",
			Help: "Draws that matched no cumulative boundary and fell back to the last prize",
		},
	)
)

// RecordSpin records one spin call. result is "success", "rejected" or "fail".
func RecordSpin(result string, prize int64, started time.Time) {
	switch result {
	case "success", "rejected":
	default:
		result = "fail"
	}
	spinTotal.WithLabelValues(result).Inc()
	spinDuration.WithLabelValues(result).Observe(float64(time.Since(started).Milliseconds()))
	if result == "success" && prize > 0 {
		spinPayout.Add(float64(prize))
	}
}

func RecordSelectionFallback() {
	selectionFallback.Inc()
}
