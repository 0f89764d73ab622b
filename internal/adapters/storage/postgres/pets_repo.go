package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, user_id, name, birth_date, gender, species, color, health_info, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO pets (
			user_id, name, birth_date, gender,
			species, color, health_info,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		p.UserID,
		p.Name,
		nullTime(p.BirthDate),
		string(p.Gender),
		p.Species,
		p.Color,
		p.HealthInfo,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE pets
		SET
			user_id = $2,
			name = $3,
			birth_date = $4,
			gender = $5,
			species = $6,
			color = $7,
			health_info = $8,
			updated_at = $9
		WHERE id = $1
	`,
		p.ID,
		p.UserID,
		p.Name,
		nullTime(p.BirthDate),
		string(p.Gender),
		p.Species,
		p.Color,
		p.HealthInfo,
		p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `SELECT `+petColumns+` FROM pets ORDER BY id ASC`)
}

func (r *PetsRepo) ListByUser(ctx context.Context, userID int64) ([]pets.Pet, error) {
	return r.query(ctx, `SELECT `+petColumns+` FROM pets WHERE user_id = $1 ORDER BY id ASC`, userID)
}

func (r *PetsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM pets WHERE id = $1`, id)
	return n > 0, err
}

func (r *PetsRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM pets WHERE user_id = $1`, userID)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	var gender string
	if err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&bd,
		&gender,
		&p.Species,
		&p.Color,
		&p.HealthInfo,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, mapErr(err)
	}
	// birth_date es DATE: pgx lo devuelve a medianoche UTC
	p.BirthDate = timePtr(bd)
	p.Gender = pets.Gender(gender)
	return p, nil
}
