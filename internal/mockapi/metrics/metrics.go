// Package metrics defines the custom Prometheus metrics exposed by the
// development stub API on /metrics, alongside the per-route HTTP metrics
// echoprometheus registers on its own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movaro_stub"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// StatusUpdatesTotal counts status transition attempts on mutable resources.
// Labels:
//   - resource: "order" or "service_request"
//   - result: "applied", "invalid_transition", or "not_found"
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of status transition attempts, by resource and result.",
	},
	[]string{"resource", "result"},
)

// CatalogWritesTotal counts catalog mutations.
// Label:
//   - action: "create", "update", or "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of catalog mutations, by action.",
	},
	[]string{"action"},
)
