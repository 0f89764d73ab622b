package cages

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"pet-clinic-admin/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Cage
	// storeErr simula el UNIQUE(pet_id) disparando después de checkPet.
	storeErr error
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Cage{}} }

func (r *testRepo) Create(_ context.Context, c Cage) (Cage, error) {
	if r.storeErr != nil {
		return Cage{}, r.storeErr
	}
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *testRepo) Update(_ context.Context, c Cage) error {
	if r.storeErr != nil {
		return r.storeErr
	}
	if _, ok := r.byID[c.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Cage, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cage{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) GetByPet(_ context.Context, petID int64) (Cage, error) {
	for _, c := range r.byID {
		if c.PetID != nil && *c.PetID == petID {
			return c, nil
		}
	}
	return Cage{}, apperr.ErrNotFound
}

func (r *testRepo) list(keep func(Cage) bool) []Cage {
	out := make([]Cage, 0)
	for _, c := range r.byID {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *testRepo) List(_ context.Context) ([]Cage, error) {
	return r.list(func(Cage) bool { return true }), nil
}

func (r *testRepo) ListByStatus(_ context.Context, st Status) ([]Cage, error) {
	return r.list(func(c Cage) bool { return c.Status == st }), nil
}

func (r *testRepo) ListByTypeAndSize(_ context.Context, cageType, size string) ([]Cage, error) {
	return r.list(func(c Cage) bool {
		return strings.EqualFold(c.Type, cageType) && strings.EqualFold(c.Size, size)
	}), nil
}

type knownPets map[int64]bool

func (k knownPets) Exists(_ context.Context, id int64) (bool, error) { return k[id], nil }

func ptr[T any](v T) *T { return &v }

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, knownPets{1: true, 2: true}, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Create_DefaultStatus(t *testing.T) {
	svc, _ := newTestService()

	empty, err := svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L"})
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, empty.Status)
	assert.Nil(t, empty.PetID)

	full, err := svc.Create(context.Background(), CreateInput{Type: "cat", Size: "S", PetID: ptr(int64(1))})
	require.NoError(t, err)
	assert.Equal(t, StatusOccupied, full.Status)
	assert.Equal(t, int64(1), *full.PetID)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Type: " ", Size: "L"})
	assert.EqualError(t, err, "Cage type cannot be null or blank")

	_, err = svc.Create(context.Background(), CreateInput{Type: "dog", Size: ""})
	assert.EqualError(t, err, "Cage size cannot be null or blank")

	_, err = svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", PetID: ptr(int64(9))})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", PetID: ptr(int64(1))})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{Type: "dog", Size: "M", PetID: ptr(int64(1))})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestService_StoreConflictOnPet(t *testing.T) {
	svc, repo := newTestService()
	c, err := svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L"})
	require.NoError(t, err)

	repo.storeErr = apperr.ErrConflict

	_, err = svc.Create(context.Background(), CreateInput{Type: "cat", Size: "S", PetID: ptr(int64(2))})
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Pet 2 is already assigned to a cage")

	_, err = svc.Update(context.Background(), c.ID, UpdateInput{Status: ptr("OCCUPIED"), PetID: ptr(int64(1))})
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Pet 1 is already assigned to a cage")
}

func TestService_Update_StatusRequiredAndPetCleared(t *testing.T) {
	svc, _ := newTestService()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c, err := svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", StartDate: &start, PetID: ptr(int64(1))})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), c.ID, UpdateInput{})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Update(context.Background(), c.ID, UpdateInput{Status: ptr("broken")})
	assert.EqualError(t, err, "Invalid cage status: broken")

	updated, err := svc.Update(context.Background(), c.ID, UpdateInput{Type: ptr(""), Status: ptr("cleaning")})
	require.NoError(t, err)
	assert.Equal(t, "dog", updated.Type)
	assert.Equal(t, StatusCleaning, updated.Status)
	assert.Nil(t, updated.PetID)
	assert.Nil(t, updated.StartDate)

	// reasignar la misma mascota a la misma jaula no es conflicto
	_, err = svc.Update(context.Background(), c.ID, UpdateInput{Status: ptr("OCCUPIED"), PetID: ptr(int64(2))})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), c.ID, UpdateInput{Status: ptr("OCCUPIED"), PetID: ptr(int64(2))})
	require.NoError(t, err)
}

func TestService_Delete_RequiresEmptyCage(t *testing.T) {
	svc, repo := newTestService()
	full, err := svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", PetID: ptr(int64(1))})
	require.NoError(t, err)
	empty, err := svc.Create(context.Background(), CreateInput{Type: "cat", Size: "S"})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), full.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Contains(t, repo.byID, full.ID)

	deleted, err := svc.Delete(context.Background(), empty.ID)
	require.NoError(t, err)
	assert.Equal(t, empty.ID, deleted.ID)
	assert.NotContains(t, repo.byID, empty.ID)

	_, err = svc.Delete(context.Background(), 404)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_ListByStatus(t *testing.T) {
	svc, _ := newTestService()
	_, _ = svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", PetID: ptr(int64(1))})
	_, _ = svc.Create(context.Background(), CreateInput{Type: "cat", Size: "S"})

	_, err := svc.ListByStatus(context.Background(), "FULL")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	items, err := svc.ListByStatus(context.Background(), "occupied")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, StatusOccupied, items[0].Status)
}

func TestService_Filter(t *testing.T) {
	svc, _ := newTestService()
	_, _ = svc.Create(context.Background(), CreateInput{Type: "Dog", Size: "Large"})
	_, _ = svc.Create(context.Background(), CreateInput{Type: "dog", Size: "small"})

	items, err := svc.Filter(context.Background(), "DOG", "large")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Large", items[0].Size)

	_, err = svc.Filter(context.Background(), "dog", " ")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestService_GetByPet(t *testing.T) {
	svc, _ := newTestService()
	c, err := svc.Create(context.Background(), CreateInput{Type: "dog", Size: "L", PetID: ptr(int64(2))})
	require.NoError(t, err)

	got, err := svc.GetByPet(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = svc.GetByPet(context.Background(), 1)
	assert.EqualError(t, err, "Cage not found for pet id: 1")
}
