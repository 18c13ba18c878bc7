package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts facade calls by operation and outcome.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "Document store operations issued by the admin service.",
	}, []string{"op", "outcome"})

	// JoinFanout tracks how long a full users fan-out takes per subcollection.
	JoinFanout = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "join_fanout_duration_seconds",
		Help:    "Duration of a complete parent/subcollection join load.",
		Buckets: prometheus.DefBuckets,
	}, []string{"child"})
)

// Observe records one store call outcome.
func Observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreOperations.WithLabelValues(op, outcome).Inc()
}
