package catalog

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
	tx   tx.Transactor
	now  func() time.Time
}

func NewService(repo Repository, transactor tx.Transactor) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{repo: repo, tx: transactor, now: time.Now}
}

type CreateInput struct {
	Name        string
	Category    *string
	Description string
	Price       *float64
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
}

func (s *Service) List(ctx context.Context) ([]Offering, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Offering, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Offering{}, notFoundByID(err, id)
	}
	return o, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Offering, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Offering{}, apperr.InvalidInput("Service name cannot be null or blank")
	}
	if in.Category == nil || strings.TrimSpace(*in.Category) == "" {
		return Offering{}, apperr.InvalidInput("Category cannot be null or blank")
	}
	category, err := parseCategoryPtr(in.Category)
	if err != nil {
		return Offering{}, err
	}
	if err := checkPrice(in.Price); err != nil {
		return Offering{}, err
	}

	now := s.now()
	return s.repo.Create(ctx, Offering{
		Name:        name,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Offering, error) {
	var updated Offering
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return apperr.InvalidInput("Service name cannot be null or blank")
			}
			o.Name = name
		}
		if in.Category != nil {
			c, err := parseCategoryPtr(in.Category)
			if err != nil {
				return err
			}
			o.Category = c
		}
		if in.Description != nil {
			o.Description = strings.TrimSpace(*in.Description)
		}
		if in.Price != nil {
			if err := checkPrice(in.Price); err != nil {
				return err
			}
			o.Price = in.Price
		}

		o.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, o); err != nil {
			return notFoundByID(err, id)
		}
		updated = o
		return nil
	})
	if err != nil {
		return Offering{}, err
	}
	return updated, nil
}

// Delete no revisa reservas; si hay reservas que apuntan al servicio
// el store devuelve ErrConflict.
func (s *Service) Delete(ctx context.Context, id int64) (Offering, error) {
	var deleted Offering
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		o, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				return apperr.Conflict("Cannot delete service with existing bookings")
			}
			return notFoundByID(err, id)
		}
		deleted = o
		return nil
	})
	if err != nil {
		return Offering{}, err
	}
	return deleted, nil
}

func parseCategoryPtr(s *string) (Category, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", nil
	}
	c, ok := ParseCategory(*s)
	if !ok {
		return "", apperr.InvalidInput("Invalid category: %s", *s)
	}
	return c, nil
}

func checkPrice(p *float64) error {
	if p != nil && *p < 0 {
		return apperr.InvalidInput("Price must be greater than or equal to 0")
	}
	return nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Service not found with id: %d", id)
	}
	return err
}
