package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StatsQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aerofit_stats_queries_total",
			Help: "Stats query counter by endpoint and outcome",
		},
		[]string{"endpoint", "status"}, // summary|crosstab|... , ok|bad_request|error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		StatsQueriesTotal,
	)
}
