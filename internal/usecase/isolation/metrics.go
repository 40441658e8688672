package isolation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	isolationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwisolation_requests_total",
			Help: "Isolation requests processed, by operation and terminal outcome",
		},
		[]string{"operation", "outcome"},
	)

	statusAggregations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hwisolation_status_aggregations_total",
			Help: "Status aggregations performed, by terminal outcome",
		},
		[]string{"outcome"},
	)
)
