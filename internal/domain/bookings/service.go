package bookings

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
	repo     Repository
	users    UserLookup
	services ServiceLookup
	tx       tx.Transactor
	now      func() time.Time
}

func NewService(repo Repository, users UserLookup, services ServiceLookup, transactor tx.Transactor) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{
		repo:     repo,
		users:    users,
		services: services,
		tx:       transactor,
		now:      time.Now,
	}
}

type CreateInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
	UserID    int64
	ServiceID int64
}

// UpdateInput: StartDate, UserID y ServiceID obligatorios; EndDate y Notes nil = no tocar.
type UpdateInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
	UserID    *int64
	ServiceID *int64
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Booking{}, notFoundByID(err, id)
	}
	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByService(ctx context.Context, serviceID int64) ([]Booking, error) {
	return s.repo.ListByService(ctx, serviceID)
}

func (s *Service) ListMine(ctx context.Context, principal auth.Claims) ([]Booking, error) {
	userID, err := s.users.IDByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound("User not found with email: %s", principal.Email)
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// Create siempre deja la reserva en PENDING.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	if in.StartDate == nil {
		return Booking{}, apperr.InvalidInput("Start date cannot be null")
	}

	var created Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, in.UserID); err != nil {
			return err
		}
		if err := s.requireService(ctx, in.ServiceID); err != nil {
			return err
		}

		now := s.now()
		b, err := s.repo.Create(ctx, Booking{
			StartDate: *in.StartDate,
			EndDate:   in.EndDate,
			Status:    StatusPending,
			Notes:     strings.TrimSpace(in.Notes),
			UserID:    in.UserID,
			ServiceID: in.ServiceID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return Booking{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Booking, error) {
	var updated Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.StartDate == nil {
			return apperr.InvalidInput("Start date cannot be null")
		}
		b.StartDate = *in.StartDate
		if in.EndDate != nil {
			b.EndDate = in.EndDate
		}
		if in.Notes != nil {
			b.Notes = strings.TrimSpace(*in.Notes)
		}

		if in.UserID == nil {
			return apperr.InvalidInput("User ID cannot be null")
		}
		if err := s.requireUser(ctx, *in.UserID); err != nil {
			return err
		}
		b.UserID = *in.UserID

		if in.ServiceID == nil {
			return apperr.InvalidInput("Service ID cannot be null")
		}
		if err := s.requireService(ctx, *in.ServiceID); err != nil {
			return err
		}
		b.ServiceID = *in.ServiceID

		b.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, b); err != nil {
			return notFoundByID(err, id)
		}
		updated = b
		return nil
	})
	if err != nil {
		return Booking{}, err
	}
	return updated, nil
}

// Cancel pasa a CANCELLED desde cualquier estado. Idempotente.
func (s *Service) Cancel(ctx context.Context, id int64) (Booking, error) {
	return s.setStatus(ctx, id, StatusCancelled)
}

func (s *Service) GetStatus(ctx context.Context, id int64) (Status, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return b.Status, nil
}

// UpdateStatus acepta cualquier estado válido, sin importar el actual.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (Booking, error) {
	st, ok := ParseStatus(status)
	if !ok {
		return Booking{}, apperr.InvalidInput("Invalid status: %s", status)
	}
	return s.setStatus(ctx, id, st)
}

// Delete solo borra reservas PENDING.
func (s *Service) Delete(ctx context.Context, id int64) (Booking, error) {
	var deleted Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b.Status != StatusPending {
			return apperr.InvalidState("Cannot delete booking with status: %s", b.Status)
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return notFoundByID(err, id)
		}
		deleted = b
		return nil
	})
	if err != nil {
		return Booking{}, err
	}
	return deleted, nil
}

func (s *Service) setStatus(ctx context.Context, id int64, st Status) (Booking, error) {
	var updated Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if b.Status == st {
			updated = b
			return nil
		}
		b.Status = st
		b.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, b); err != nil {
			return notFoundByID(err, id)
		}
		updated = b
		return nil
	})
	if err != nil {
		return Booking{}, err
	}
	return updated, nil
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

func (s *Service) requireService(ctx context.Context, serviceID int64) error {
	if serviceID <= 0 {
		return apperr.InvalidInput("Service ID cannot be null")
	}
	ok, err := s.services.Exists(ctx, serviceID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Service not found with id: %d", serviceID)
	}
	return nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Booking not found with id: %d", id)
	}
	return err
}
