package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/cages"
)

type CagesRepo struct {
	db *sql.DB
}

func NewCagesRepo(db *sql.DB) *CagesRepo {
	return &CagesRepo{db: db}
}

const cageColumns = `id, type, size, status, start_date, end_date, pet_id, created_at, updated_at`

func (r *CagesRepo) Create(ctx context.Context, c cages.Cage) (cages.Cage, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO cages (type, size, status, start_date, end_date, pet_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		c.Type,
		c.Size,
		string(c.Status),
		nullTime(c.StartDate),
		nullTime(c.EndDate),
		nullInt(c.PetID),
		c.CreatedAt,
		c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return cages.Cage{}, mapErr(err)
	}
	return c, nil
}

func (r *CagesRepo) Update(ctx context.Context, c cages.Cage) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE cages
		SET
			type = $2,
			size = $3,
			status = $4,
			start_date = $5,
			end_date = $6,
			pet_id = $7,
			updated_at = $8
		WHERE id = $1
	`,
		c.ID,
		c.Type,
		c.Size,
		string(c.Status),
		nullTime(c.StartDate),
		nullTime(c.EndDate),
		nullInt(c.PetID),
		c.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *CagesRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM cages WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *CagesRepo) GetByID(ctx context.Context, id int64) (cages.Cage, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+cageColumns+` FROM cages WHERE id = $1`, id)
	return scanCage(row)
}

func (r *CagesRepo) GetByPet(ctx context.Context, petID int64) (cages.Cage, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+cageColumns+` FROM cages WHERE pet_id = $1`, petID)
	return scanCage(row)
}

func (r *CagesRepo) List(ctx context.Context) ([]cages.Cage, error) {
	return r.query(ctx, `SELECT `+cageColumns+` FROM cages ORDER BY id ASC`)
}

func (r *CagesRepo) ListByStatus(ctx context.Context, status cages.Status) ([]cages.Cage, error) {
	return r.query(ctx, `SELECT `+cageColumns+` FROM cages WHERE status = $1 ORDER BY id ASC`, string(status))
}

func (r *CagesRepo) ListByTypeAndSize(ctx context.Context, cageType, size string) ([]cages.Cage, error) {
	return r.query(ctx, `
		SELECT `+cageColumns+`
		FROM cages
		WHERE lower(type) = lower($1) AND lower(size) = lower($2)
		ORDER BY id ASC
	`, cageType, size)
}

func (r *CagesRepo) ExistsByPet(ctx context.Context, petID int64) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM cages WHERE pet_id = $1`, petID)
	return n > 0, err
}

func (r *CagesRepo) query(ctx context.Context, q string, args ...any) ([]cages.Cage, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cages.Cage, 0)
	for rows.Next() {
		c, err := scanCage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCage(s scanner) (cages.Cage, error) {
	var c cages.Cage
	var status string
	var start, end sql.NullTime
	var petID sql.NullInt64
	if err := s.Scan(
		&c.ID,
		&c.Type,
		&c.Size,
		&status,
		&start,
		&end,
		&petID,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cages.Cage{}, mapErr(err)
	}
	c.Status = cages.Status(status)
	c.StartDate = timePtr(start)
	c.EndDate = timePtr(end)
	c.PetID = intPtr(petID)
	return c, nil
}
