package postgres

import (
	"context"
	"database/sql"

	"pet-clinic-admin/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

const recordColumns = `id, diagnosis, prescription, notes, next_meeting_date, pet_id, user_id, created_at, updated_at`

func (r *RecordsRepo) Create(ctx context.Context, m records.MedicalRecord) (records.MedicalRecord, error) {
	err := conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO medical_records (
			diagnosis, prescription, notes, next_meeting_date,
			pet_id, user_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		m.Diagnosis,
		m.Prescription,
		m.Notes,
		nullTime(m.NextMeetingDate),
		m.PetID,
		m.UserID,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return records.MedicalRecord{}, mapErr(err)
	}
	return m, nil
}

func (r *RecordsRepo) Update(ctx context.Context, m records.MedicalRecord) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `
		UPDATE medical_records
		SET
			diagnosis = $2,
			prescription = $3,
			notes = $4,
			next_meeting_date = $5,
			pet_id = $6,
			user_id = $7,
			updated_at = $8
		WHERE id = $1
	`,
		m.ID,
		m.Diagnosis,
		m.Prescription,
		m.Notes,
		nullTime(m.NextMeetingDate),
		m.PetID,
		m.UserID,
		m.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *RecordsRepo) Delete(ctx context.Context, id int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = $1`, id)
	return scanRecord(row)
}

func (r *RecordsRepo) List(ctx context.Context) ([]records.MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records ORDER BY id ASC`)
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE pet_id = $1 ORDER BY id ASC`, petID)
}

func (r *RecordsRepo) ListByUser(ctx context.Context, userID int64) ([]records.MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE user_id = $1 ORDER BY id ASC`, userID)
}

func (r *RecordsRepo) CountByPet(ctx context.Context, petID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM medical_records WHERE pet_id = $1`, petID)
}

func (r *RecordsRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM medical_records WHERE user_id = $1`, userID)
}

func (r *RecordsRepo) query(ctx context.Context, q string, args ...any) ([]records.MedicalRecord, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanRecord(s scanner) (records.MedicalRecord, error) {
	var m records.MedicalRecord
	var next sql.NullTime
	if err := s.Scan(
		&m.ID,
		&m.Diagnosis,
		&m.Prescription,
		&m.Notes,
		&next,
		&m.PetID,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return records.MedicalRecord{}, mapErr(err)
	}
	m.NextMeetingDate = timePtr(next)
	return m, nil
}
