package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordertrack_order_actions_total",
		Help: "Total number of order actions successfully forwarded to the backend.",
	},
		[]string{"action"},
	)

	OrderActionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordertrack_order_action_errors_total",
		Help: "Total number of order actions rejected or failed.",
	},
		[]string{"action"},
	)

	OrderCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordertrack_order_cache_hits_total",
		Help: "Total number of order view reads served from cache.",
	})

	OrderCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordertrack_order_cache_misses_total",
		Help: "Total number of order view reads that required a backend fetch.",
	})

	OrderCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ordertrack_order_cache_items",
		Help: "Current number of order views resident in the cache.",
	})
)
