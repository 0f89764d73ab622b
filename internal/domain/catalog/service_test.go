package catalog

import (
	"context"
	"testing"
	"time"

	"pet-clinic-admin/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Offering
	inUse  map[int64]bool
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Offering{}, inUse: map[int64]bool{}}
}

func (r *testRepo) Create(_ context.Context, o Offering) (Offering, error) {
	r.nextID++
	o.ID = r.nextID
	r.byID[o.ID] = o
	return o, nil
}

func (r *testRepo) Update(_ context.Context, o Offering) error {
	if _, ok := r.byID[o.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	if r.inUse[id] {
		return apperr.ErrConflict
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Offering, error) {
	o, ok := r.byID[id]
	if !ok {
		return Offering{}, apperr.ErrNotFound
	}
	return o, nil
}

func (r *testRepo) List(_ context.Context) ([]Offering, error) {
	out := make([]Offering, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if o, ok := r.byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), CreateInput{Name: "Grooming", Category: ptr("care"), Price: ptr(50.0)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Equal(t, CategoryCare, o.Category)
	assert.Equal(t, 50.0, *o.Price)

	got, err := svc.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Name: "Grooming", Category: ptr("SPA")})
	assert.EqualError(t, err, "Invalid category: SPA")

	_, err = svc.Create(context.Background(), CreateInput{Name: "Grooming", Category: ptr("CARE"), Price: ptr(-1.0)})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Create(context.Background(), CreateInput{Name: "Grooming"})
	assert.EqualError(t, err, "Category cannot be null or blank")

	_, err = svc.Create(context.Background(), CreateInput{Name: "Grooming", Category: ptr(" ")})
	assert.EqualError(t, err, "Category cannot be null or blank")

	_, err = svc.Create(context.Background(), CreateInput{Name: "  "})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	assert.Empty(t, repo.byID)
}

func TestService_Update_Partial(t *testing.T) {
	svc, _ := newTestService()
	o, err := svc.Create(context.Background(), CreateInput{Name: "Grooming", Category: ptr("CARE"), Description: "baño", Price: ptr(50.0)})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), o.ID, UpdateInput{Price: ptr(65.5)})
	require.NoError(t, err)
	assert.Equal(t, "Grooming", updated.Name)
	assert.Equal(t, "baño", updated.Description)
	assert.Equal(t, 65.5, *updated.Price)

	_, err = svc.Update(context.Background(), o.ID, UpdateInput{Category: ptr("nope")})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Update(context.Background(), 99, UpdateInput{})
	assert.EqualError(t, err, "Service not found with id: 99")
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	used, _ := svc.Create(context.Background(), CreateInput{Name: "Consulta", Category: ptr("HEALTH")})
	free, _ := svc.Create(context.Background(), CreateInput{Name: "Baño", Category: ptr("CARE")})
	repo.inUse[used.ID] = true

	_, err := svc.Delete(context.Background(), used.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	deleted, err := svc.Delete(context.Background(), free.ID)
	require.NoError(t, err)
	assert.Equal(t, "Baño", deleted.Name)

	_, err = svc.Delete(context.Background(), free.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" emergency ")
	assert.True(t, ok)
	assert.Equal(t, CategoryEmergency, c)

	_, ok = ParseCategory("")
	assert.False(t, ok)
}
