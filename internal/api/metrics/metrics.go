// Package metrics defines and registers the custom Prometheus metrics for
// the movie lobby API. It is the single source of truth for metric names,
// labels, and help strings; all vectors register with the default registry
// at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movielobby"

// CacheRequestsTotal counts listing-cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (read the store)
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of response-cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// MoviesCreatedTotal counts catalog entries successfully created.
var MoviesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies added to the catalog.",
	},
)

// AuthRejectionsTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "missing_token", "invalid_token", or "role_denied"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware chain.",
	},
	[]string{"reason"},
)

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
