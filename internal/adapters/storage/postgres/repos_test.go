package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"pet-clinic-admin/internal/domain/bookings"
	"pet-clinic-admin/internal/domain/cages"
	"pet-clinic-admin/internal/domain/pets"
	"pet-clinic-admin/internal/domain/users"
	"pet-clinic-admin/internal/platform/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestPetsRepo_Create_ReturnsID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`INSERT INTO pets`).
		WithArgs(int64(2), "Milo", sqlmock.AnyArg(), "MALE", "dog", "brown", "", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	p, err := repo.Create(context.Background(), pets.Pet{
		UserID:    2,
		Name:      "Milo",
		Gender:    pets.GenderMale,
		Species:   "dog",
		Color:     "brown",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectQuery(`SELECT (.+) FROM pets WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPetsRepo_Update_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPetsRepo(db)

	mock.ExpectExec(`UPDATE pets`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), pets.Pet{ID: 5, Name: "Milo", UserID: 2})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_Create_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsersRepo(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), users.User{Email: "a@example.com", Role: users.RoleOwner})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUsersRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_name", "password", "phone", "email", "role", "created_at", "updated_at"}).
		AddRow(int64(1), "Admin", "$2a$10$hash", "0123456789", "admin@example.com", "ADMIN", now, now)
	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("admin@example.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, users.RoleAdmin, u.Role)
	assert.Equal(t, "0123456789", u.Phone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCagesRepo_ListByStatus_NullableColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCagesRepo(db)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "type", "size", "status", "start_date", "end_date", "pet_id", "created_at", "updated_at"}).
		AddRow(int64(1), "dog", "L", "OCCUPIED", start, nil, int64(3), now, now).
		AddRow(int64(2), "cat", "S", "OCCUPIED", nil, nil, int64(4), now, now)
	mock.ExpectQuery(`FROM cages WHERE status = \$1`).
		WithArgs("OCCUPIED").
		WillReturnRows(rows)

	items, err := repo.ListByStatus(context.Background(), cages.StatusOccupied)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].StartDate)
	assert.Equal(t, start, *items[0].StartDate)
	assert.Nil(t, items[0].EndDate)
	assert.Equal(t, int64(3), *items[0].PetID)
	assert.Nil(t, items[1].StartDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServicesRepo_Delete_ForeignKeyIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewServicesRepo(db)

	mock.ExpectExec(`DELETE FROM services`).
		WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(t, repo.Delete(context.Background(), 1), apperr.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingsRepo_CountByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewBookingsRepo(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM service_bookings WHERE user_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountByUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_CommitAndRollback(t *testing.T) {
	db, mock := setupMockDB(t)
	tx := NewTransactor(db)
	repo := NewBookingsRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE service_bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tx.WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Update(ctx, bookings.Booking{ID: 1, StartDate: now, Status: bookings.StatusAccepted, UserID: 2, ServiceID: 1})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = tx.WithinTx(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
