package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tajer_orders_created_total",
		Help: "Total number of orders created through intake.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tajer_order_status_transitions_total",
		Help: "Total number of order status transitions, by target status.",
	},
		[]string{"status"},
	)

	LedgerEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tajer_ledger_entries_total",
		Help: "Total number of wallet ledger entries posted, by category.",
	},
		[]string{"category"},
	)

	CollectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tajer_collections_total",
		Help: "Total number of delivered orders collected.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tajer_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
