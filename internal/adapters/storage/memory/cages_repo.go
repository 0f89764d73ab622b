package memory

import (
	"context"
	"strings"
	"sync"

	"pet-clinic-admin/internal/domain/cages"
	"pet-clinic-admin/internal/platform/apperr"
)

type CagesRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]cages.Cage
}

func NewCagesRepo() *CagesRepo {
	return &CagesRepo{byID: make(map[int64]cages.Cage)}
}

func (r *CagesRepo) Create(ctx context.Context, c cages.Cage) (cages.Cage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.petTaken(0, c.PetID) {
		return cages.Cage{}, apperr.ErrConflict
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *CagesRepo) Update(ctx context.Context, c cages.Cage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return apperr.ErrNotFound
	}
	if r.petTaken(c.ID, c.PetID) {
		return apperr.ErrConflict
	}
	r.byID[c.ID] = c
	return nil
}

func (r *CagesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *CagesRepo) GetByID(ctx context.Context, id int64) (cages.Cage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cages.Cage{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *CagesRepo) GetByPet(ctx context.Context, petID int64) (cages.Cage, error) {
	items := r.filter(func(c cages.Cage) bool { return c.PetID != nil && *c.PetID == petID })
	if len(items) == 0 {
		return cages.Cage{}, apperr.ErrNotFound
	}
	return items[0], nil
}

func (r *CagesRepo) List(ctx context.Context) ([]cages.Cage, error) {
	return r.filter(func(cages.Cage) bool { return true }), nil
}

func (r *CagesRepo) ListByStatus(ctx context.Context, status cages.Status) ([]cages.Cage, error) {
	return r.filter(func(c cages.Cage) bool { return c.Status == status }), nil
}

func (r *CagesRepo) ListByTypeAndSize(ctx context.Context, cageType, size string) ([]cages.Cage, error) {
	return r.filter(func(c cages.Cage) bool {
		return strings.EqualFold(c.Type, cageType) && strings.EqualFold(c.Size, size)
	}), nil
}

func (r *CagesRepo) ExistsByPet(ctx context.Context, petID int64) (bool, error) {
	_, err := r.GetByPet(ctx, petID)
	return err == nil, nil
}

func (r *CagesRepo) filter(keep func(cages.Cage) bool) []cages.Cage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cages.Cage, 0)
	for _, c := range r.byID {
		if keep(c) {
			out = append(out, c)
		}
	}
	sortByID(out, func(c cages.Cage) int64 { return c.ID })
	return out
}

// petTaken replica el UNIQUE(pet_id) de Postgres. Llamar con el lock tomado.
func (r *CagesRepo) petTaken(selfID int64, petID *int64) bool {
	if petID == nil {
		return false
	}
	for _, c := range r.byID {
		if c.ID != selfID && c.PetID != nil && *c.PetID == *petID {
			return true
		}
	}
	return false
}
