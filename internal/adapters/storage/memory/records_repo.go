package memory

import (
	"context"
	"sync"

	"pet-clinic-admin/internal/domain/records"
	"pet-clinic-admin/internal/platform/apperr"
)

type RecordsRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]records.MedicalRecord
}

func NewRecordsRepo() *RecordsRepo {
	return &RecordsRepo{byID: make(map[int64]records.MedicalRecord)}
}

func (r *RecordsRepo) Create(ctx context.Context, m records.MedicalRecord) (records.MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *RecordsRepo) Update(ctx context.Context, m records.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return records.MedicalRecord{}, apperr.ErrNotFound
	}
	return m, nil
}

func (r *RecordsRepo) List(ctx context.Context) ([]records.MedicalRecord, error) {
	return r.filter(func(records.MedicalRecord) bool { return true }), nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	return r.filter(func(m records.MedicalRecord) bool { return m.PetID == petID }), nil
}

func (r *RecordsRepo) ListByUser(ctx context.Context, userID int64) ([]records.MedicalRecord, error) {
	return r.filter(func(m records.MedicalRecord) bool { return m.UserID == userID }), nil
}

func (r *RecordsRepo) CountByPet(ctx context.Context, petID int64) (int, error) {
	items, _ := r.ListByPet(ctx, petID)
	return len(items), nil
}

func (r *RecordsRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	items, _ := r.ListByUser(ctx, userID)
	return len(items), nil
}

func (r *RecordsRepo) filter(keep func(records.MedicalRecord) bool) []records.MedicalRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, m := range r.byID {
		if keep(m) {
			out = append(out, m)
		}
	}
	sortByID(out, func(m records.MedicalRecord) int64 { return m.ID })
	return out
}
