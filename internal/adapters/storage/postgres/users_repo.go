package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, user_name, password, COALESCE(phone, ''), email, role, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO users (user_name, password, phone, email, role, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id
	`,
		u.Name,
		u.PasswordHash,
		u.Phone,
		u.Email,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		return users.User{}, mapErr(err)
	}
	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE users
		SET
			user_name = $2,
			password = $3,
			phone = NULLIF($4, ''),
			email = $5,
			role = $6,
			updated_at = $7
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.PasswordHash,
		u.Phone,
		u.Email,
		string(u.Role),
		u.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM users WHERE email = $1`, email)
	return n > 0, err
}

func (r *UsersRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if phone == "" {
		return false, nil
	}
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM users WHERE phone = $1`, phone)
	return n > 0, err
}

func (r *UsersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM users WHERE id = $1`, id)
	return n > 0, err
}

func (r *UsersRepo) IDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var role string
	if err := s.Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.Phone,
		&u.Email,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, mapErr(err)
	}
	u.Role = users.Role(role)
	return u, nil
}
