package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the capability set shared by User, Amenity, Place and Review.
type Entity interface {
	EntityID() string
	Created() time.Time
	Updated() time.Time
	// Attribute returns the value of a named wire field, used for attribute lookups.
	Attribute(name string) (any, bool)
}

// base holds the identity and timestamps common to every entity.
type base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

func newBase() base {
	now := time.Now().UTC()
	return base{id: uuid.NewString(), createdAt: now, updatedAt: now}
}

func (b *base) EntityID() string { return b.id }
func (b *base) Created() time.Time { return b.createdAt }
func (b *base) Updated() time.Time { return b.updatedAt }

// touch bumps updated_at, never moving it backwards.
func (b *base) touch() {
	now := time.Now().UTC()
	if now.Before(b.updatedAt) {
		now = b.updatedAt
	}
	b.updatedAt = now
}

func (b *base) attribute(name string) (any, bool) {
	switch name {
	case "id":
		return b.id, true
	case "created_at":
		return b.createdAt, true
	case "updated_at":
		return b.updatedAt, true
	}
	return nil, false
}

// Meta is the identity block embedded in every view.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *base) meta() Meta {
	return Meta{ID: b.id, CreatedAt: b.createdAt, UpdatedAt: b.updatedAt}
}

// Entity kinds, used in not-found errors, logs and metric labels.
const (
	KindUser    = "user"
	KindAmenity = "amenity"
	KindPlace   = "place"
	KindReview  = "review"
)
