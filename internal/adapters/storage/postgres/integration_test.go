//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"pet-clinic-admin/internal/domain/bookings"
	"pet-clinic-admin/internal/domain/catalog"
	"pet-clinic-admin/internal/domain/users"
	"pet-clinic-admin/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("clinic_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	// segunda vez: sin cambios, no es error
	require.NoError(t, Migrate(db))

	return NewStore(db)
}

func TestIntegration_BookingLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	s := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC()

	u, err := s.Users.Create(ctx, users.User{Name: "Ana", PasswordHash: "x", Email: "ana@example.com", Role: users.RoleOwner, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = s.Users.Create(ctx, users.User{Name: "Otra", PasswordHash: "x", Email: "ana@example.com", Role: users.RoleOwner, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	price := 50.0
	o, err := s.Services.Create(ctx, catalog.Offering{Name: "Grooming", Category: catalog.CategoryCare, Price: &price, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	b, err := s.Bookings.Create(ctx, bookings.Booking{StartDate: start, Status: bookings.StatusPending, UserID: u.ID, ServiceID: o.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	got, err := s.Bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.StartDate.Equal(start))
	assert.Equal(t, bookings.StatusPending, got.Status)

	// FK RESTRICT: no se borra un servicio con reservas
	assert.ErrorIs(t, s.Services.Delete(ctx, o.ID), apperr.ErrConflict)

	n, err := s.Bookings.CountByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
