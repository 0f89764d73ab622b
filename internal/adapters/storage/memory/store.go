package memory

import (
	"context"
	"sort"
	"sync"
)

// Store agrupa todos los repos en memoria (modo dev/tests, sin DB_DSN).
type Store struct {
	Users    *UsersRepo
	Pets     *PetsRepo
	Cages    *CagesRepo
	Records  *RecordsRepo
	Services *ServicesRepo
	Bookings *BookingsRepo

	Tx *Transactor
}

func NewStore() *Store {
	s := &Store{
		Users:    NewUsersRepo(),
		Pets:     NewPetsRepo(),
		Cages:    NewCagesRepo(),
		Records:  NewRecordsRepo(),
		Bookings: NewBookingsRepo(),
		Tx:       &Transactor{},
	}
	// igual que la FK RESTRICT de bookings.service_id en Postgres
	s.Services = NewServicesRepo(s.Bookings.CountByService)
	return s
}

// Transactor serializa las mutaciones bajo un lock global.
// No hay rollback: los servicios validan antes de escribir.
type Transactor struct {
	mu sync.Mutex
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

// sortByID deja los listados en orden de alta.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
