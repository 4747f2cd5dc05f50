// Package metrics defines and registers all custom Prometheus metrics for the
// accounts API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Auth flow metrics ─────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "email_in_use", "weak_password", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsIssuedTotal counts sessions created on register or login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of sessions issued.",
	},
)

// SessionsRenewedTotal counts sliding-expiry renewals performed during validation.
var SessionsRenewedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_renewed_total",
		Help:      "Total number of sessions whose expiry was slid forward on validation.",
	},
)

// SessionsEndedTotal counts sessions removed from the store.
// Label:
//   - reason: "logout" (explicit invalidation) or "expired" (lazy expiry on validation)
var SessionsEndedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions deleted, by reason.",
	},
	[]string{"reason"},
)

// ── Breach check metrics ──────────────────────────────────────────────────────

// BreachChecksTotal counts password strength checks against the breach corpus.
// Label:
//   - result: "clean", "compromised", "error"
var BreachChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breach_checks_total",
		Help:      "Total number of breach-database password checks, by result.",
	},
	[]string{"result"},
)

// BreachRangeCacheTotal counts range-response cache decisions.
// Label:
//   - result: "hit" or "miss"
var BreachRangeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breach_range_cache_total",
		Help:      "Total number of breach range cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
