package pets

import (
	"context"
	"testing"
	"time"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID int64
	byID   map[int64]Pet
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int64]Pet{}} }

func (r *testRepo) Create(_ context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID int64) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// testUsers: email -> id
type testUsers map[string]int64

func (u testUsers) Exists(_ context.Context, id int64) (bool, error) {
	for _, v := range u {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

func (u testUsers) IDByEmail(_ context.Context, email string) (int64, error) {
	id, ok := u[email]
	if !ok {
		return 0, apperr.ErrNotFound
	}
	return id, nil
}

type cagedPets map[int64]bool

func (c cagedPets) ExistsByPet(_ context.Context, petID int64) (bool, error) { return c[petID], nil }

type recordsPerPet map[int64]int

func (c recordsPerPet) CountByPet(_ context.Context, petID int64) (int, error) { return c[petID], nil }

func ptr[T any](v T) *T { return &v }

func newTestService() (*Service, *testRepo, cagedPets, recordsPerPet) {
	repo := newTestRepo()
	cages := cagedPets{}
	records := recordsPerPet{}
	users := testUsers{"owner@example.com": 2, "other@example.com": 3}
	svc := NewService(repo, users, nil, Guards{Cages: cages, Records: records})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo, cages, records
}

func TestService_Create_RoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService()
	bd := time.Date(2021, 4, 10, 0, 0, 0, 0, time.UTC)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:      "Milo",
		BirthDate: &bd,
		Gender:    ptr("male"),
		Species:   "dog",
		Color:     "brown",
		UserID:    2,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	assert.Equal(t, GenderMale, got.Gender)
	assert.Equal(t, bd, *got.BirthDate)
	assert.Equal(t, int64(2), got.UserID)
}

func TestService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Name: "Milo", UserID: 99})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.EqualError(t, err, "User not found with id: 99")

	_, err = svc.Create(context.Background(), CreateInput{Name: "Milo", UserID: 2, Gender: ptr("other")})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	_, err = svc.Create(context.Background(), CreateInput{Name: " ", UserID: 2})
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestService_Update_Partial(t *testing.T) {
	svc, _, _, _ := newTestService()
	p, err := svc.Create(context.Background(), CreateInput{Name: "Milo", Species: "dog", Color: "brown", UserID: 2})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Color: ptr("black")})
	require.NoError(t, err)
	assert.Equal(t, "Milo", updated.Name)
	assert.Equal(t, "dog", updated.Species)
	assert.Equal(t, "black", updated.Color)

	updated, err = svc.Update(context.Background(), p.ID, UpdateInput{UserID: ptr(int64(3))})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.UserID)

	_, err = svc.Update(context.Background(), p.ID, UpdateInput{UserID: ptr(int64(42))})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.Update(context.Background(), 777, UpdateInput{Color: ptr("x")})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_Delete_Guards(t *testing.T) {
	svc, repo, cages, records := newTestService()
	p, err := svc.Create(context.Background(), CreateInput{Name: "Milo", UserID: 2})
	require.NoError(t, err)

	cages[p.ID] = true
	_, err = svc.Delete(context.Background(), p.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	cages[p.ID] = false
	records[p.ID] = 2
	_, err = svc.Delete(context.Background(), p.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Cannot delete pet with associated medical records.")

	records[p.ID] = 0
	deleted, err := svc.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)
	assert.Empty(t, repo.byID)

	_, err = svc.Delete(context.Background(), p.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_ListMine(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Create(context.Background(), CreateInput{Name: "Milo", UserID: 2})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateInput{Name: "Luna", UserID: 3})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), auth.Claims{Email: "owner@example.com"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Milo", mine[0].Name)

	_, err = svc.ListMine(context.Background(), auth.Claims{Email: "ghost@example.com"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
