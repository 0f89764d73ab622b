package cages

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/ports/tx"
)

type Service struct {
	repo Repository
	pets PetLookup
	tx   tx.Transactor
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup, transactor tx.Transactor) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{
		repo: repo,
		pets: pets,
		tx:   transactor,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type      string
	Size      string
	StartDate *time.Time
	EndDate   *time.Time
	PetID     *int64
}

// UpdateInput no es un PATCH puro: Status es obligatorio y
// StartDate/EndDate/PetID se pisan siempre (nil limpia).
type UpdateInput struct {
	Type      *string
	Size      *string
	Status    *string
	StartDate *time.Time
	EndDate   *time.Time
	PetID     *int64
}

func (s *Service) List(ctx context.Context) ([]Cage, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Cage, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cage{}, notFoundByID(err, id)
	}
	return c, nil
}

func (s *Service) GetByPet(ctx context.Context, petID int64) (Cage, error) {
	c, err := s.repo.GetByPet(ctx, petID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Cage{}, apperr.NotFound("Cage not found for pet id: %d", petID)
		}
		return Cage{}, err
	}
	return c, nil
}

// Create: con mascota queda OCCUPIED, sin mascota AVAILABLE.
func (s *Service) Create(ctx context.Context, in CreateInput) (Cage, error) {
	cageType := strings.TrimSpace(in.Type)
	size := strings.TrimSpace(in.Size)
	if cageType == "" {
		return Cage{}, apperr.InvalidInput("Cage type cannot be null or blank")
	}
	if size == "" {
		return Cage{}, apperr.InvalidInput("Cage size cannot be null or blank")
	}

	status := StatusAvailable
	if in.PetID != nil {
		status = StatusOccupied
	}

	var created Cage
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkPet(ctx, in.PetID, 0); err != nil {
			return err
		}
		now := s.now()
		c, err := s.repo.Create(ctx, Cage{
			Type:      cageType,
			Size:      size,
			Status:    status,
			StartDate: in.StartDate,
			EndDate:   in.EndDate,
			PetID:     in.PetID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return petTaken(err, in.PetID)
		}
		created = c
		return nil
	})
	if err != nil {
		return Cage{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Cage, error) {
	var updated Cage
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Type != nil && strings.TrimSpace(*in.Type) != "" {
			c.Type = strings.TrimSpace(*in.Type)
		}
		if in.Size != nil && strings.TrimSpace(*in.Size) != "" {
			c.Size = strings.TrimSpace(*in.Size)
		}
		status, err := parseStatusArg(in.Status)
		if err != nil {
			return err
		}
		c.Status = status
		c.StartDate = in.StartDate
		c.EndDate = in.EndDate

		if err := s.checkPet(ctx, in.PetID, id); err != nil {
			return err
		}
		c.PetID = in.PetID

		c.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, c); err != nil {
			return petTaken(notFoundByID(err, id), in.PetID)
		}
		updated = c
		return nil
	})
	if err != nil {
		return Cage{}, err
	}
	return updated, nil
}

// Delete nunca borra una jaula con mascota: hay que vaciarla antes.
func (s *Service) Delete(ctx context.Context, id int64) (Cage, error) {
	var deleted Cage
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.PetID != nil {
			return apperr.Conflict("Cannot delete cage assigned to a pet.")
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return notFoundByID(err, id)
		}
		deleted = c
		return nil
	})
	if err != nil {
		return Cage{}, err
	}
	return deleted, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]Cage, error) {
	st, err := parseStatusArg(&status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(ctx, st)
}

func (s *Service) Filter(ctx context.Context, cageType, size string) ([]Cage, error) {
	cageType = strings.TrimSpace(cageType)
	size = strings.TrimSpace(size)
	if cageType == "" {
		return nil, apperr.InvalidInput("Cage type cannot be null or blank")
	}
	if size == "" {
		return nil, apperr.InvalidInput("Cage size cannot be null or blank")
	}
	return s.repo.ListByTypeAndSize(ctx, cageType, size)
}

// checkPet valida que la mascota exista y no esté en otra jaula (distinta de selfID).
func (s *Service) checkPet(ctx context.Context, petID *int64, selfID int64) error {
	if petID == nil {
		return nil
	}
	ok, err := s.pets.Exists(ctx, *petID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Pet not found with id: %d", *petID)
	}

	other, err := s.repo.GetByPet(ctx, *petID)
	switch {
	case err == nil && other.ID != selfID:
		return apperr.Conflict("Pet %d is already assigned to cage %d", *petID, other.ID)
	case err != nil && !errors.Is(err, apperr.ErrNotFound):
		return err
	}
	return nil
}

func parseStatusArg(s *string) (Status, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", apperr.InvalidInput("Cage status cannot be null or blank")
	}
	st, ok := ParseStatus(*s)
	if !ok {
		return "", apperr.InvalidInput("Invalid cage status: %s", *s)
	}
	return st, nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Cage not found with id: %d", id)
	}
	return err
}

// petTaken traduce el ErrConflict de UNIQUE(pet_id) cuando otra escritura
// asignó la mascota después de checkPet.
func petTaken(err error, petID *int64) error {
	if !errors.Is(err, apperr.ErrConflict) {
		return err
	}
	if petID == nil {
		return apperr.Conflict("Cage conflicts with an existing assignment")
	}
	return apperr.Conflict("Pet %d is already assigned to a cage", *petID)
}
