package memory

import (
	"context"
	"sync"

	"pet-clinic-admin/internal/domain/users"
	"pet-clinic-admin/internal/platform/apperr"
)

type UsersRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]users.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{byID: make(map[int64]users.User)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(0, u.Email, u.Phone) {
		return users.User{}, apperr.ErrConflict
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return apperr.ErrNotFound
	}
	if r.taken(u.ID, u.Email, u.Phone) {
		return apperr.ErrConflict
	}
	r.byID[u.ID] = u
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, apperr.ErrNotFound
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sortByID(out, func(u users.User) int64 { return u.ID })
	return out, nil
}

func (r *UsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *UsersRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if phone != "" && u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

// Exists y IDByEmail sirven de lookup para pets, records y bookings.
func (r *UsersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *UsersRepo) IDByEmail(ctx context.Context, email string) (int64, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// taken: email o teléfono usados por otro usuario distinto de selfID. Llamar con el lock tomado.
func (r *UsersRepo) taken(selfID int64, email, phone string) bool {
	for _, u := range r.byID {
		if u.ID == selfID {
			continue
		}
		if email != "" && u.Email == email {
			return true
		}
		if phone != "" && u.Phone == phone {
			return true
		}
	}
	return false
}
