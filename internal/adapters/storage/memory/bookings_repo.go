package memory

import (
	"context"
	"sync"

	"pet-clinic-admin/internal/domain/bookings"
	"pet-clinic-admin/internal/platform/apperr"
)

type BookingsRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]bookings.Booking
}

func NewBookingsRepo() *BookingsRepo {
	return &BookingsRepo{byID: make(map[int64]bookings.Booking)}
}

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	r.byID[b.ID] = b
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, b bookings.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[b.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *BookingsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return bookings.Booking{}, apperr.ErrNotFound
	}
	return b, nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	return r.filter(func(bookings.Booking) bool { return true }), nil
}

func (r *BookingsRepo) ListByUser(ctx context.Context, userID int64) ([]bookings.Booking, error) {
	return r.filter(func(b bookings.Booking) bool { return b.UserID == userID }), nil
}

func (r *BookingsRepo) ListByService(ctx context.Context, serviceID int64) ([]bookings.Booking, error) {
	return r.filter(func(b bookings.Booking) bool { return b.ServiceID == serviceID }), nil
}

func (r *BookingsRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	items, _ := r.ListByUser(ctx, userID)
	return len(items), nil
}

func (r *BookingsRepo) CountByService(ctx context.Context, serviceID int64) (int, error) {
	items, _ := r.ListByService(ctx, serviceID)
	return len(items), nil
}

func (r *BookingsRepo) filter(keep func(bookings.Booking) bool) []bookings.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bookings.Booking, 0)
	for _, b := range r.byID {
		if keep(b) {
			out = append(out, b)
		}
	}
	sortByID(out, func(b bookings.Booking) int64 { return b.ID })
	return out
}
