// Package metrics defines and registers all custom Prometheus metrics for the
// PickPega API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register against the default Prometheus registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pickpega"

// AccountsCreatedTotal counts restaurant accounts created across both stores.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of restaurant accounts created.",
	},
)

// PartialWritesTotal counts dual-store operations that left the identity and
// document stores diverged.
// Label:
//   - op: "create", "delete" or "password"
var PartialWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partial_writes_total",
		Help:      "Total number of dual-store operations that ended in a partial write.",
	},
	[]string{"op"},
)

// OrdersCreatedTotal counts orders accepted.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// ReconcilerCleanupsTotal counts orphaned identity records removed by the
// reconciliation sweep.
// Label:
//   - op: journal operation the orphan originated from
var ReconcilerCleanupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconciler_cleanups_total",
		Help:      "Total number of orphaned identity records removed by the reconciler.",
	},
	[]string{"op"},
)
