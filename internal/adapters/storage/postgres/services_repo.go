package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/catalog"
)

type ServicesRepo struct {
	db *sql.DB
}

func NewServicesRepo(db *sql.DB) *ServicesRepo {
	return &ServicesRepo{db: db}
}

const serviceColumns = `id, service_name, category, description, price, created_at, updated_at`

func (r *ServicesRepo) Create(ctx context.Context, o catalog.Offering) (catalog.Offering, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO services (service_name, category, description, price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		o.Name,
		string(o.Category),
		o.Description,
		nullFloat(o.Price),
		o.CreatedAt,
		o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return catalog.Offering{}, mapErr(err)
	}
	return o, nil
}

func (r *ServicesRepo) Update(ctx context.Context, o catalog.Offering) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE services
		SET
			service_name = $2,
			category = $3,
			description = $4,
			price = $5,
			updated_at = $6
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		string(o.Category),
		o.Description,
		nullFloat(o.Price),
		o.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

// Delete devuelve ErrConflict si hay reservas (FK RESTRICT).
func (r *ServicesRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *ServicesRepo) GetByID(ctx context.Context, id int64) (catalog.Offering, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	return scanOffering(row)
}

func (r *ServicesRepo) List(ctx context.Context) ([]catalog.Offering, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Offering, 0)
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ServicesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM services WHERE id = $1`, id)
	return n > 0, err
}

func scanOffering(s scanner) (catalog.Offering, error) {
	var o catalog.Offering
	var category string
	var price sql.NullFloat64
	if err := s.Scan(
		&o.ID,
		&o.Name,
		&category,
		&o.Description,
		&price,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		return catalog.Offering{}, mapErr(err)
	}
	o.Category = catalog.Category(category)
	if price.Valid {
		p := price.Float64
		o.Price = &p
	}
	return o, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
