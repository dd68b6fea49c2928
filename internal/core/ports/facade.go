package ports

import (
	"context"

	"github.com/hbnb/rental-directory/internal/core/domain"
)

// Stats holds entity counts, reported by the readiness probe.
type Stats struct {
	Users     int `json:"users"`
	Amenities int `json:"amenities"`
	Places    int `json:"places"`
	Reviews   int `json:"reviews"`
}

type UserService interface {
	CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// GetUserByEmail returns a *domain.NotFoundError when no user has email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)

	// CreateUniqueUser and UpdateUniqueUser also reject an email held by
	// another user, checked atomically with the write.
	CreateUniqueUser(ctx context.Context, in domain.UserInput) (*domain.User, error)
	UpdateUniqueUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}

type AmenityService interface {
	CreateAmenity(ctx context.Context, in domain.AmenityInput) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id string) (*domain.Amenity, error)
	GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error)
	UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error)
}

type PlaceService interface {
	CreatePlace(ctx context.Context, in domain.PlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	// GetPlaceDetail returns the place with owner, amenities and reviews expanded.
	GetPlaceDetail(ctx context.Context, id string) (*domain.PlaceDetail, error)
	GetAllPlaces(ctx context.Context) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, id string, patch domain.PlacePatch) (*domain.Place, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, in domain.ReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	GetAllReviews(ctx context.Context) ([]*domain.Review, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// Facade is the single entry point the HTTP adapter and the seed loader use.
type Facade interface {
	UserService
	AmenityService
	PlaceService
	ReviewService
	Stats(ctx context.Context) Stats
}
