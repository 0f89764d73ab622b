package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/bookings"
)

type BookingsRepo struct {
	db *sql.DB
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{db: db}
}

const bookingColumns = `id, start_date, end_date, status, notes, user_id, service_id, created_at, updated_at`

func (r *BookingsRepo) Create(ctx context.Context, b bookings.Booking) (bookings.Booking, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO service_bookings (
			start_date, end_date, status, notes,
			user_id, service_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		b.StartDate,
		nullTime(b.EndDate),
		string(b.Status),
		b.Notes,
		b.UserID,
		b.ServiceID,
		b.CreatedAt,
		b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return bookings.Booking{}, mapErr(err)
	}
	return b, nil
}

func (r *BookingsRepo) Update(ctx context.Context, b bookings.Booking) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE service_bookings
		SET
			start_date = $2,
			end_date = $3,
			status = $4,
			notes = $5,
			user_id = $6,
			service_id = $7,
			updated_at = $8
		WHERE id = $1
	`,
		b.ID,
		b.StartDate,
		nullTime(b.EndDate),
		string(b.Status),
		b.Notes,
		b.UserID,
		b.ServiceID,
		b.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *BookingsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM service_bookings WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *BookingsRepo) GetByID(ctx context.Context, id int64) (bookings.Booking, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM service_bookings WHERE id = $1`, id)
	return scanBooking(row)
}

func (r *BookingsRepo) List(ctx context.Context) ([]bookings.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM service_bookings ORDER BY id ASC`)
}

func (r *BookingsRepo) ListByUser(ctx context.Context, userID int64) ([]bookings.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM service_bookings WHERE user_id = $1 ORDER BY id ASC`, userID)
}

func (r *BookingsRepo) ListByService(ctx context.Context, serviceID int64) ([]bookings.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM service_bookings WHERE service_id = $1 ORDER BY id ASC`, serviceID)
}

func (r *BookingsRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM service_bookings WHERE user_id = $1`, userID)
}

func (r *BookingsRepo) query(ctx context.Context, q string, args ...any) ([]bookings.Booking, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookings.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(s scanner) (bookings.Booking, error) {
	var b bookings.Booking
	var end sql.NullTime
	var status string
	if err := s.Scan(
		&b.ID,
		&b.StartDate,
		&end,
		&status,
		&b.Notes,
		&b.UserID,
		&b.ServiceID,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return bookings.Booking{}, mapErr(err)
	}
	b.EndDate = timePtr(end)
	b.Status = bookings.Status(status)
	return b, nil
}
