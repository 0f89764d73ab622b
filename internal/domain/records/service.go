package records

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/ports/auth"
	"pet-clinic-admin/internal/ports/tx"
)

type Service struct {
	repo  Repository
	pets  PetLookup
	users UserLookup
	tx    tx.Transactor
	now   func() time.Time
}

func NewService(repo Repository, pets PetLookup, users UserLookup, transactor tx.Transactor) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{
		repo:  repo,
		pets:  pets,
		users: users,
		tx:    transactor,
		now:   time.Now,
	}
}

type CreateInput struct {
	Diagnosis       string
	Prescription    string
	Notes           string
	NextMeetingDate *time.Time
	PetID           int64
	UserID          int64
}

// UpdateInput: Diagnosis, PetID y UserID son obligatorios en update
// (en create no se exige diagnosis). El resto, nil = no tocar.
type UpdateInput struct {
	Diagnosis       *string
	Prescription    *string
	Notes           *string
	NextMeetingDate *time.Time
	PetID           *int64
	UserID          *int64
}

func (s *Service) List(ctx context.Context) ([]MedicalRecord, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (MedicalRecord, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, notFoundByID(err, id)
	}
	return m, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]MedicalRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListMine(ctx context.Context, principal auth.Claims) ([]MedicalRecord, error) {
	userID, err := s.users.IDByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound("User not found with email: %s", principal.Email)
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	var created MedicalRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requirePet(ctx, in.PetID); err != nil {
			return err
		}
		if err := s.requireUser(ctx, in.UserID); err != nil {
			return err
		}

		now := s.now()
		m, err := s.repo.Create(ctx, MedicalRecord{
			Diagnosis:       strings.TrimSpace(in.Diagnosis),
			Prescription:    strings.TrimSpace(in.Prescription),
			Notes:           strings.TrimSpace(in.Notes),
			NextMeetingDate: in.NextMeetingDate,
			PetID:           in.PetID,
			UserID:          in.UserID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return MedicalRecord{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (MedicalRecord, error) {
	var updated MedicalRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Diagnosis == nil || strings.TrimSpace(*in.Diagnosis) == "" {
			return apperr.InvalidInput("Diagnosis cannot be null or empty")
		}
		m.Diagnosis = strings.TrimSpace(*in.Diagnosis)
		if in.Prescription != nil {
			m.Prescription = strings.TrimSpace(*in.Prescription)
		}
		if in.Notes != nil {
			m.Notes = strings.TrimSpace(*in.Notes)
		}
		if in.NextMeetingDate != nil {
			m.NextMeetingDate = in.NextMeetingDate
		}

		if in.PetID == nil {
			return apperr.InvalidInput("Pet ID cannot be null")
		}
		if err := s.requirePet(ctx, *in.PetID); err != nil {
			return err
		}
		m.PetID = *in.PetID

		if in.UserID == nil {
			return apperr.InvalidInput("User ID cannot be null")
		}
		if err := s.requireUser(ctx, *in.UserID); err != nil {
			return err
		}
		m.UserID = *in.UserID

		m.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, m); err != nil {
			return notFoundByID(err, id)
		}
		updated = m
		return nil
	})
	if err != nil {
		return MedicalRecord{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (MedicalRecord, error) {
	var deleted MedicalRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return notFoundByID(err, id)
		}
		deleted = m
		return nil
	})
	if err != nil {
		return MedicalRecord{}, err
	}
	return deleted, nil
}

func (s *Service) requirePet(ctx context.Context, petID int64) error {
	if petID <= 0 {
		return apperr.InvalidInput("Pet ID cannot be null")
	}
	ok, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Pet not found with id: %d", petID)
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return apperr.InvalidInput("User ID cannot be null")
	}
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("User not found with id: %d", userID)
	}
	return nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Medical record not found with id: %d", id)
	}
	return err
}
