// Package metrics defines and registers the custom Prometheus metrics for the
// rental directory. It is the single source of truth for metric names,
// labels, and help strings.
//
// The metrics register with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hbnb/rental-directory/internal/core/ports"
)

const namespace = "hbnb"

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntitiesCreatedTotal counts entities accepted by the facade.
// Label:
//   - entity: "user", "amenity", "place" or "review"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by kind.",
	},
	[]string{"entity"},
)

// EntitiesUpdatedTotal counts successful updates.
// Label:
//   - entity: "user", "amenity", "place" or "review"
var EntitiesUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_updated_total",
		Help:      "Total number of entities updated, by kind.",
	},
	[]string{"entity"},
)

// ValidationFailuresTotal counts create or update calls rejected by a field
// or referential rule.
// Labels:
//   - entity: the kind being created or updated
//   - field: the offending field (e.g. "email", "owner_id")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of rejected writes, by entity and field.",
	},
	[]string{"entity", "field"},
)

// ReviewsDeletedTotal counts removed reviews.
var ReviewsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_deleted_total",
		Help:      "Total number of reviews deleted.",
	},
)

// ── Idempotency metrics ───────────────────────────────────────────────────────

// IdempotencyTotal counts idempotency-key lookups on POST routes.
// Label:
//   - result: "hit" (cached response replayed), "miss" (request executed) or "error"
var IdempotencyTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_total",
		Help:      "Total number of idempotency-key lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Facade recorder ───────────────────────────────────────────────────────────

// Recorder reports facade outcomes through the package counters.
type Recorder struct{}

var _ ports.Metrics = Recorder{}

func NewRecorder() Recorder { return Recorder{} }

func (Recorder) EntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

func (Recorder) EntityUpdated(entity string) {
	EntitiesUpdatedTotal.WithLabelValues(entity).Inc()
}

func (Recorder) WriteRejected(entity, field string) {
	ValidationFailuresTotal.WithLabelValues(entity, field).Inc()
}

func (Recorder) ReviewDeleted() {
	ReviewsDeletedTotal.Inc()
}
