package memory

import (
	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// NewRepositories returns a fresh, empty set of in-memory stores.
func NewRepositories() ports.Repositories {
	return ports.Repositories{
		Users:     NewRepository[*domain.User, domain.UserPatch](domain.KindUser),
		Amenities: NewRepository[*domain.Amenity, domain.AmenityPatch](domain.KindAmenity),
		Places:    NewRepository[*domain.Place, domain.PlacePatch](domain.KindPlace),
		Reviews:   NewRepository[*domain.Review, domain.ReviewPatch](domain.KindReview),
	}
}
