package users

import (
	"context"
	"sort"
	"testing"
	"time"

	"pet-clinic-admin/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]User
	// storeErr simula un constraint del store que el pre-chequeo no vio.
	storeErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}}
}

func (r *testRepo) Create(_ context.Context, u User) (User, error) {
	if r.storeErr != nil {
		return User{}, r.storeErr
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) Update(_ context.Context, u User) error {
	if r.storeErr != nil {
		return r.storeErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if r.storeErr != nil {
		return r.storeErr
	}
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, apperr.ErrNotFound
}

func (r *testRepo) List(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *testRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	for _, u := range r.byID {
		if u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

// plainHasher prefija "hashed:" para poder verificar que se hasheó.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Matches(h, p string) bool      { return h == "hashed:"+p }

type countByUser map[int64]int

func (c countByUser) CountByUser(_ context.Context, userID int64) (int, error) {
	return c[userID], nil
}

func newTestService(deps Dependents) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, plainHasher{}, nil, deps)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func validInput() CreateInput {
	return CreateInput{Name: "Ana", Password: "supersecret1", Phone: "0999000111", Email: "ana@example.com"}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ForcesOwnerAndHashes(t *testing.T) {
	svc, _ := newTestService(Dependents{})

	u, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleOwner, u.Role)
	assert.Equal(t, "hashed:supersecret1", u.PasswordHash)

	got, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "0999000111", got.Phone)
}

func TestService_Create_Conflicts(t *testing.T) {
	svc, _ := newTestService(Dependents{})
	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	dupEmail := validInput()
	dupEmail.Phone = "0999000222"
	_, err = svc.Create(context.Background(), dupEmail)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Email already in use")

	dupPhone := validInput()
	dupPhone.Email = "other@example.com"
	_, err = svc.Create(context.Background(), dupPhone)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Phone number already in use")
}

func TestService_StoreConflictKeepsDomainMessage(t *testing.T) {
	svc, repo := newTestService(Dependents{})
	u, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	repo.storeErr = apperr.ErrConflict

	other := validInput()
	other.Email, other.Phone = "race@example.com", "0999000444"
	_, err = svc.Create(context.Background(), other)
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Email or phone number already in use")

	email := "race2@example.com"
	_, err = svc.Update(context.Background(), u.ID, UpdateInput{Email: &email})
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Email or phone number already in use")

	_, err = svc.Delete(context.Background(), u.ID)
	require.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Cannot delete user with associated records")
}

func TestService_Create_MissingPasswordOrEmail(t *testing.T) {
	svc, _ := newTestService(Dependents{})

	in := validInput()
	in.Password = ""
	_, err := svc.Create(context.Background(), in)
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))

	in = validInput()
	in.Email = "  "
	_, err = svc.Create(context.Background(), in)
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
}

func TestService_Update_PartialAndCollisions(t *testing.T) {
	svc, _ := newTestService(Dependents{})
	ana, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	other := validInput()
	other.Email, other.Phone = "bob@example.com", "0999000333"
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	name := "Ana María"
	pw := "anotherpass1"
	updated, err := svc.Update(context.Background(), ana.ID, UpdateInput{Name: &name, Password: &pw})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, "hashed:anotherpass1", updated.PasswordHash)
	assert.Equal(t, "ana@example.com", updated.Email)

	// mismo email propio no es colisión
	same := "ana@example.com"
	_, err = svc.Update(context.Background(), ana.ID, UpdateInput{Email: &same})
	require.NoError(t, err)

	taken := "bob@example.com"
	_, err = svc.Update(context.Background(), ana.ID, UpdateInput{Email: &taken})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	takenPhone := "0999000333"
	_, err = svc.Update(context.Background(), ana.ID, UpdateInput{Phone: &takenPhone})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	_, err = svc.Update(context.Background(), 999, UpdateInput{Name: &name})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_Delete_BlockedByDependents(t *testing.T) {
	pets := countByUser{}
	svc, repo := newTestService(Dependents{Pets: pets, Bookings: countByUser{}, Records: countByUser{}})
	u, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	pets[u.ID] = 1
	_, err = svc.Delete(context.Background(), u.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Len(t, repo.byID, 1)

	pets[u.ID] = 0
	deleted, err := svc.Delete(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, deleted.ID)
	assert.Empty(t, repo.byID)

	_, err = svc.Delete(context.Background(), u.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestService_UpdateRole(t *testing.T) {
	svc, _ := newTestService(Dependents{})
	u, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateRole(context.Background(), u.ID, "doctor")
	require.NoError(t, err)
	assert.Equal(t, RoleDoctor, updated.Role)

	role, err := svc.GetRole(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleDoctor, role)

	_, err = svc.UpdateRole(context.Background(), u.ID, "superuser")
	assert.True(t, apperr.Is(err, apperr.KindInvalidInput))
	assert.EqualError(t, err, "Invalid role: superuser")
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := newTestService(Dependents{})
	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "ana@example.com", "supersecret1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = svc.Authenticate(context.Background(), "ana@example.com", "wrong")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "supersecret1")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestService_Seed_IsIdempotent(t *testing.T) {
	svc, repo := newTestService(Dependents{})

	require.NoError(t, svc.Seed(context.Background(), nil, DefaultSeedUsers))
	require.NoError(t, svc.Seed(context.Background(), nil, DefaultSeedUsers))
	assert.Len(t, repo.byID, len(DefaultSeedUsers))

	admin, err := svc.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)

	_, err = svc.Authenticate(context.Background(), "doctor@example.com", "doctor123")
	assert.NoError(t, err)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" staff ")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, r)

	_, ok = ParseRole("ROLE_STAFF")
	assert.False(t, ok)
}
