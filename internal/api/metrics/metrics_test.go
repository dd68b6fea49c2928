package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hbnb/rental-directory/internal/core/domain"
)

func TestRecorder_IncrementsCounters(t *testing.T) {
	r := NewRecorder()

	created := testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues(domain.KindPlace))
	updated := testutil.ToFloat64(EntitiesUpdatedTotal.WithLabelValues(domain.KindUser))
	rejected := testutil.ToFloat64(ValidationFailuresTotal.WithLabelValues(domain.KindReview, "rating"))
	deleted := testutil.ToFloat64(ReviewsDeletedTotal)

	r.EntityCreated(domain.KindPlace)
	r.EntityUpdated(domain.KindUser)
	r.WriteRejected(domain.KindReview, "rating")
	r.ReviewDeleted()

	if got := testutil.ToFloat64(EntitiesCreatedTotal.WithLabelValues(domain.KindPlace)); got != created+1 {
		t.Errorf("entities_created_total{place} = %v, want %v", got, created+1)
	}
	if got := testutil.ToFloat64(EntitiesUpdatedTotal.WithLabelValues(domain.KindUser)); got != updated+1 {
		t.Errorf("entities_updated_total{user} = %v, want %v", got, updated+1)
	}
	if got := testutil.ToFloat64(ValidationFailuresTotal.WithLabelValues(domain.KindReview, "rating")); got != rejected+1 {
		t.Errorf("validation_failures_total{review,rating} = %v, want %v", got, rejected+1)
	}
	if got := testutil.ToFloat64(ReviewsDeletedTotal); got != deleted+1 {
		t.Errorf("reviews_deleted_total = %v, want %v", got, deleted+1)
	}
}
