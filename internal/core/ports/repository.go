package ports

import (
	"context"

	"github.com/hbnb/rental-directory/internal/core/domain"
)

// Record is what a repository can store: an entity that applies patches of
// type P to itself and can produce an independent copy.
type Record[T any, P any] interface {
	domain.Entity
	Apply(patch P) error
	Clone() T
}

// Repository defines storage operations shared by every entity kind.
// Implementations return *domain.NotFoundError for unknown ids.
type Repository[T Record[T, P], P any] interface {
	Add(ctx context.Context, entity T) error
	Get(ctx context.Context, id string) (T, error)
	// GetByAttribute returns the first entity, in insertion order, whose
	// named attribute equals value.
	GetByAttribute(ctx context.Context, name string, value any) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	// Update applies patch atomically: on a validation error nothing changes.
	Update(ctx context.Context, id string, patch P) (T, error)
	// Modify runs fn against the stored entity under the repository lock.
	// Changes made by fn are kept only when it returns nil.
	Modify(ctx context.Context, id string, fn func(T) error) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	Len(ctx context.Context) int
}

// Repositories groups the four stores the facade orchestrates.
type Repositories struct {
	Users     Repository[*domain.User, domain.UserPatch]
	Amenities Repository[*domain.Amenity, domain.AmenityPatch]
	Places    Repository[*domain.Place, domain.PlacePatch]
	Reviews   Repository[*domain.Review, domain.ReviewPatch]
}
