package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outboxDispatch = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outbox_dispatch_total",
		Help: "Outbox deliveries by topic and result (sent, retry, dead)",
	},
	[]string{"topic", "result"},
)

func RecordOutbox(topic, result string) {
	outboxDispatch.WithLabelValues(topic, result).Inc()
}
