package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_transitions_total",
			Help: "Settlement state transitions by direction and resulting status",
		},
		[]string{"direction", "status"},
	)

	ledgerCorruption = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_corruption_total",
			Help: "Reconciliations that found the cached balance out of line with the ledger",
		},
	)
)

func RecordSettlement(direction, status string) {
	settlementTransitions.WithLabelValues(direction, status).Inc()
}

func RecordLedgerCorruption() {
	ledgerCorruption.Inc()
}
