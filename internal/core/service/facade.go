package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// Facade mediates every entity operation and enforces the cross-entity
// reference rules no single repository can check on its own.
type Facade struct {
	// mu makes each reference check and the write that depends on it atomic.
	mu sync.RWMutex

	users     ports.Repository[*domain.User, domain.UserPatch]
	amenities ports.Repository[*domain.Amenity, domain.AmenityPatch]
	places    ports.Repository[*domain.Place, domain.PlacePatch]
	reviews   ports.Repository[*domain.Review, domain.ReviewPatch]

	policy  domain.ReviewPolicy
	metrics ports.Metrics
	logger  zerolog.Logger
}

var _ ports.Facade = (*Facade)(nil)

// NewFacade wires the repositories together. A nil m disables metrics.
func NewFacade(repos ports.Repositories, policy domain.ReviewPolicy, m ports.Metrics, logger zerolog.Logger) *Facade {
	if m == nil {
		m = ports.NopMetrics{}
	}
	return &Facade{
		users:     repos.Users,
		amenities: repos.Amenities,
		places:    repos.Places,
		reviews:   repos.Reviews,
		policy:    policy,
		metrics:   m,
		logger:    logger,
	}
}

// rejected records a validation failure for entity and returns err unchanged.
func (f *Facade) rejected(entity string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		f.metrics.WriteRejected(entity, ve.Field)
		f.logger.Debug().Str("entity", entity).Str("field", ve.Field).Msg(ve.Message)
	}
	return err
}

func (f *Facade) created(entity, id string) {
	f.metrics.EntityCreated(entity)
	f.logger.Info().Str("entity", entity).Str("id", id).Msg("entity created")
}

func (f *Facade) updated(entity, id string) {
	f.metrics.EntityUpdated(entity)
	f.logger.Info().Str("entity", entity).Str("id", id).Msg("entity updated")
}

// ── Users ─────────────────────────────────────────────────────────────────────

func (f *Facade) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return f.createUser(ctx, in, false)
}

// CreateUniqueUser is CreateUser that also refuses an email already held by
// a stored user. The lookup and the insert happen under one lock.
func (f *Facade) CreateUniqueUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	return f.createUser(ctx, in, true)
}

func (f *Facade) createUser(ctx context.Context, in domain.UserInput, unique bool) (*domain.User, error) {
	u, err := domain.NewUser(in)
	if err != nil {
		return nil, f.rejected(domain.KindUser, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if unique {
		if err := f.checkEmailFree(ctx, u.Email(), ""); err != nil {
			return nil, f.rejected(domain.KindUser, err)
		}
	}
	if err := f.users.Add(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	f.created(domain.KindUser, u.EntityID())
	return u, nil
}

// checkEmailFree reports a ValidationError when a user other than selfID
// holds email. Callers hold f.mu.
func (f *Facade) checkEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := f.users.GetByAttribute(ctx, "email", email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.EntityID() != selfID:
		return domain.NewValidationError("email", domain.MsgEmailTaken)
	}
	return nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.users.Get(ctx, id)
}

func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByAttribute(ctx, "email", email)
}

func (f *Facade) GetUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.GetAll(ctx)
}

func (f *Facade) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return f.updateUser(ctx, id, patch, false)
}

// UpdateUniqueUser is UpdateUser that refuses to move the user onto an email
// another user holds. A missing id wins over a taken email.
func (f *Facade) UpdateUniqueUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	return f.updateUser(ctx, id, patch, true)
}

func (f *Facade) updateUser(ctx context.Context, id string, patch domain.UserPatch, unique bool) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if unique && patch.Email != nil {
		if _, err := f.users.Get(ctx, id); err != nil {
			return nil, err
		}
		if err := f.checkEmailFree(ctx, *patch.Email, id); err != nil {
			return nil, f.rejected(domain.KindUser, err)
		}
	}

	u, err := f.users.Update(ctx, id, patch)
	if err != nil {
		return nil, f.rejected(domain.KindUser, err)
	}
	f.updated(domain.KindUser, id)
	return u, nil
}

// ── Amenities ─────────────────────────────────────────────────────────────────

func (f *Facade) CreateAmenity(ctx context.Context, in domain.AmenityInput) (*domain.Amenity, error) {
	a, err := domain.NewAmenity(in)
	if err != nil {
		return nil, f.rejected(domain.KindAmenity, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.amenities.Add(ctx, a); err != nil {
		return nil, fmt.Errorf("create amenity: %w", err)
	}
	f.created(domain.KindAmenity, a.EntityID())
	return a, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.amenities.Get(ctx, id)
}

func (f *Facade) GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.GetAll(ctx)
}

// UpdateAmenity checks existence first, then the name rule, then applies.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, patch domain.AmenityPatch) (*domain.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.amenities.Get(ctx, id); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := domain.ValidateAmenityName(*patch.Name); err != nil {
			return nil, f.rejected(domain.KindAmenity, err)
		}
	}

	a, err := f.amenities.Update(ctx, id, patch)
	if err != nil {
		return nil, f.rejected(domain.KindAmenity, err)
	}
	f.updated(domain.KindAmenity, id)
	return a, nil
}

// ── Places ────────────────────────────────────────────────────────────────────

// checkOwner reports a ValidationError when ownerID names no stored user.
func (f *Facade) checkOwner(ctx context.Context, ownerID string) error {
	if _, err := f.users.Get(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("owner_id", "Owner not found")
		}
		return err
	}
	return nil
}

// checkAmenities reports the first id, in order, that names no stored amenity.
func (f *Facade) checkAmenities(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := f.amenities.Get(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("amenities", fmt.Sprintf("Amenity %s not found", id))
			}
			return err
		}
	}
	return nil
}

func (f *Facade) CreatePlace(ctx context.Context, in domain.PlaceInput) (*domain.Place, error) {
	p, err := domain.NewPlace(in)
	if err != nil {
		return nil, f.rejected(domain.KindPlace, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOwner(ctx, p.OwnerID()); err != nil {
		return nil, f.rejected(domain.KindPlace, err)
	}
	if err := f.checkAmenities(ctx, p.AmenityIDs()); err != nil {
		return nil, f.rejected(domain.KindPlace, err)
	}
	if err := f.places.Add(ctx, p); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	f.created(domain.KindPlace, p.EntityID())
	return p, nil
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	return f.places.Get(ctx, id)
}

// GetPlaceDetail resolves the place's references. Ones that no longer
// resolve are left out: a missing owner yields a nil Owner.
func (f *Facade) GetPlaceDetail(ctx context.Context, id string) (*domain.PlaceDetail, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, err := f.places.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := f.users.Get(ctx, p.OwnerID())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var amenities []*domain.Amenity
	for _, aid := range p.AmenityIDs() {
		a, err := f.amenities.Get(ctx, aid)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		amenities = append(amenities, a)
	}

	reviews, err := f.reviewsOf(ctx, p)
	if err != nil {
		return nil, err
	}

	d := p.Expand(owner, amenities, reviews)
	return &d, nil
}

func (f *Facade) GetAllPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.GetAll(ctx)
}

// UpdatePlace re-checks owner and amenities only when the patch changes them.
func (f *Facade) UpdatePlace(ctx context.Context, id string, patch domain.PlacePatch) (*domain.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.places.Get(ctx, id); err != nil {
		return nil, err
	}
	if patch.OwnerID != nil {
		if err := domain.ValidateReference("owner_id", *patch.OwnerID); err != nil {
			return nil, f.rejected(domain.KindPlace, err)
		}
		if err := f.checkOwner(ctx, *patch.OwnerID); err != nil {
			return nil, f.rejected(domain.KindPlace, err)
		}
	}
	if patch.AmenityIDs != nil {
		if err := f.checkAmenities(ctx, *patch.AmenityIDs); err != nil {
			return nil, f.rejected(domain.KindPlace, err)
		}
	}

	p, err := f.places.Update(ctx, id, patch)
	if err != nil {
		return nil, f.rejected(domain.KindPlace, err)
	}
	f.updated(domain.KindPlace, id)
	return p, nil
}

// ── Reviews ───────────────────────────────────────────────────────────────────

func (f *Facade) CreateReview(ctx context.Context, in domain.ReviewInput) (*domain.Review, error) {
	r, err := domain.NewReview(in, f.policy)
	if err != nil {
		return nil, f.rejected(domain.KindReview, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.users.Get(ctx, r.UserID()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, f.rejected(domain.KindReview, domain.NewValidationError("user_id", "User not found"))
		}
		return nil, err
	}
	if _, err := f.places.Get(ctx, r.PlaceID()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, f.rejected(domain.KindReview, domain.NewValidationError("place_id", "Place not found"))
		}
		return nil, err
	}

	if err := f.reviews.Add(ctx, r); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if _, err := f.places.Modify(ctx, r.PlaceID(), func(p *domain.Place) error {
		p.AddReview(r.EntityID())
		return nil
	}); err != nil {
		return nil, fmt.Errorf("link review to place: %w", err)
	}
	f.created(domain.KindReview, r.EntityID())
	return r, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.reviews.Get(ctx, id)
}

func (f *Facade) GetAllReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.GetAll(ctx)
}

// GetReviewsByPlace lists the place's reviews in creation order.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, err := f.places.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return f.reviewsOf(ctx, p)
}

func (f *Facade) reviewsOf(ctx context.Context, p *domain.Place) ([]*domain.Review, error) {
	ids := p.ReviewIDs()
	out := make([]*domain.Review, 0, len(ids))
	for _, rid := range ids {
		r, err := f.reviews.Get(ctx, rid)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *Facade) UpdateReview(ctx context.Context, id string, patch domain.ReviewPatch) (*domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, err := f.reviews.Update(ctx, id, patch)
	if err != nil {
		return nil, f.rejected(domain.KindReview, err)
	}
	f.updated(domain.KindReview, id)
	return r, nil
}

// DeleteReview removes the review and its back-reference on the place, if
// the place still exists.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, err := f.reviews.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := f.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	_, err = f.places.Modify(ctx, r.PlaceID(), func(p *domain.Place) error {
		p.RemoveReview(id)
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("unlink review from place: %w", err)
	}

	f.metrics.ReviewDeleted()
	f.logger.Info().Str("entity", domain.KindReview).Str("id", id).Msg("entity deleted")
	return nil
}

// Stats reports the number of stored entities per kind.
func (f *Facade) Stats(ctx context.Context) ports.Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return ports.Stats{
		Users:     f.users.Len(ctx),
		Amenities: f.amenities.Len(ctx),
		Places:    f.places.Len(ctx),
		Reviews:   f.reviews.Len(ctx),
	}
}
