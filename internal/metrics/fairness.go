package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fairnessVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairness_verifications_total",
			Help: "Spin verifications by outcome (match, violation)",
		},
		[]string{"outcome"},
	)

	seedRotations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "server_seed_rotations_total",
			Help: "Seed rotation runs by result",
		},
		[]string{"result"},
	)
)

func RecordVerification(match bool) {
	if match {
		fairnessVerifications.WithLabelValues("match").Inc()
		return
	}
	fairnessVerifications.WithLabelValues("violation").Inc()
}

func RecordRotation(err error) {
	if err != nil {
		seedRotations.WithLabelValues("fail").Inc()
		return
	}
	seedRotations.WithLabelValues("success").Inc()
}
