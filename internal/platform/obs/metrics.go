package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rideplan_operation_duration_seconds",
			Help:    "Duration of instrumented operations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "status"},
	)

	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rideplan_plans_generated_total",
			Help: "Plans generated, by selection strategy.",
		},
		[]string{"strategy"},
	)

	PlanSelectedRides = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rideplan_plan_selected_rides",
			Help:    "Number of rides selected per plan.",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rideplan_catalog_cache_lookups_total",
			Help: "Catalog cache lookups, by result.",
		},
		[]string{"result"},
	)
)
