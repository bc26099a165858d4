// Package metrics defines and registers all custom Prometheus metrics for
// the Track Me API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trackme"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ResourcesCreatedTotal counts created owned resources.
// Label:
//   - kind: "transaction", "budget", "goal", "recurring" or "category"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of owned resources created, by kind.",
	},
	[]string{"kind"},
)

// TransactionsSyncedTotal counts items handled by the transaction sync
// endpoint.
// Label:
//   - result: "synced" (fresh insert), "replayed" (idempotent replay) or
//     "failed" (item skipped after an insert error)
var TransactionsSyncedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_synced_total",
		Help:      "Total number of transactions handled by batch sync, by result.",
	},
	[]string{"result"},
)
