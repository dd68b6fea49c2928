package memory

import (
	"context"
	"sync"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// Repository is an in-process store for one entity kind. Entities are cloned
// on the way in and out, so stored state only changes through its methods.
type Repository[T ports.Record[T, P], P any] struct {
	kind string

	mu    sync.RWMutex
	items map[string]T
	order []string
}

var _ ports.Repository[*domain.User, domain.UserPatch] = (*Repository[*domain.User, domain.UserPatch])(nil)

// NewRepository returns an empty repository. kind names the entity in
// not-found errors ("user", "place", ...).
func NewRepository[T ports.Record[T, P], P any](kind string) *Repository[T, P] {
	return &Repository[T, P]{kind: kind, items: make(map[string]T)}
}

// Add stores entity, replacing any entity with the same id in place.
func (r *Repository[T, P]) Add(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	if _, ok := r.items[id]; !ok {
		r.order = append(r.order, id)
	}
	r.items[id] = entity.Clone()
	return nil
}

func (r *Repository[T, P]) Get(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.NewNotFoundError(r.kind, id)
	}
	return e.Clone(), nil
}

func (r *Repository[T, P]) GetByAttribute(_ context.Context, name string, value any) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		e := r.items[id]
		if v, ok := e.Attribute(name); ok && v == value {
			return e.Clone(), nil
		}
	}
	var zero T
	return zero, domain.NewNotFoundError(r.kind, "")
}

func (r *Repository[T, P]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}

func (r *Repository[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	return r.Modify(ctx, id, func(e T) error { return e.Apply(patch) })
}

// Modify hands fn a working copy and stores it only if fn succeeds.
func (r *Repository[T, P]) Modify(_ context.Context, id string, fn func(T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	current, ok := r.items[id]
	if !ok {
		return zero, domain.NewNotFoundError(r.kind, id)
	}
	work := current.Clone()
	if err := fn(work); err != nil {
		return zero, err
	}
	r.items[id] = work
	return work.Clone(), nil
}

func (r *Repository[T, P]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *Repository[T, P]) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
