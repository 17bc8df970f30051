package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScansRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_scans_recorded_total",
		Help: "Total number of scan records appended.",
	})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_orders_completed_total",
		Help: "Total number of completed-order records inserted.",
	})

	CompletionConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_completion_conflicts_total",
		Help: "Total number of completions rejected for a duplicate order id.",
	})

	PickIssuesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_pick_issues_total",
		Help: "Total number of pick issues reported.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	BagCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fulfillment_bag_cache_items",
		Help: "Current number of bags held in the in-process cache.",
	})
)
