package memory

import (
	"context"
	"sync"

	"pet-clinic-admin/internal/domain/catalog"
	"pet-clinic-admin/internal/platform/apperr"
)

type ServicesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]catalog.Offering

	// bookings cuenta reservas que apuntan al servicio; puede ser nil.
	bookings func(ctx context.Context, serviceID int64) (int, error)
}

func NewServicesRepo(bookings func(ctx context.Context, serviceID int64) (int, error)) *ServicesRepo {
	return &ServicesRepo{byID: make(map[int64]catalog.Offering), bookings: bookings}
}

func (r *ServicesRepo) Create(ctx context.Context, o catalog.Offering) (catalog.Offering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o.ID = r.nextID
	r.byID[o.ID] = o
	return o, nil
}

func (r *ServicesRepo) Update(ctx context.Context, o catalog.Offering) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[o.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ServicesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	if r.bookings != nil {
		n, err := r.bookings(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.ErrConflict
		}
	}
	delete(r.byID, id)
	return nil
}

func (r *ServicesRepo) GetByID(ctx context.Context, id int64) (catalog.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return catalog.Offering{}, apperr.ErrNotFound
	}
	return o, nil
}

func (r *ServicesRepo) List(ctx context.Context) ([]catalog.Offering, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Offering, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sortByID(out, func(o catalog.Offering) int64 { return o.ID })
	return out, nil
}

func (r *ServicesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}
