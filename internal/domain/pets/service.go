package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/ports/auth"
	"pet-clinic-admin/internal/ports/tx"
)

// Guards bloquean el borrado de una mascota.
type Guards struct {
	Cages   CageLinkChecker
	Records RecordCounter
}

type Service struct {
	repo   Repository
	users  UserLookup
	tx     tx.Transactor
	guards Guards
	now    func() time.Time
}

func NewService(repo Repository, users UserLookup, transactor tx.Transactor, guards Guards) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{
		repo:   repo,
		users:  users,
		tx:     transactor,
		guards: guards,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name       string
	BirthDate  *time.Time
	Gender     *string
	Species    string
	Color      string
	HealthInfo string
	UserID     int64
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name       *string
	BirthDate  *time.Time
	Gender     *string
	Species    *string
	Color      *string
	HealthInfo *string
	UserID     *int64
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, notFoundByID(err, id)
	}
	return p, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Pet, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListMine resuelve principal -> user id y lista sus mascotas.
func (s *Service) ListMine(ctx context.Context, principal auth.Claims) ([]Pet, error) {
	userID, err := s.users.IDByEmail(ctx, principal.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.NotFound("User not found with email: %s", principal.Email)
		}
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, apperr.InvalidInput("Pet name cannot be null")
	}
	gender, err := parseGenderPtr(in.Gender)
	if err != nil {
		return Pet{}, err
	}

	var created Pet
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, in.UserID); err != nil {
			return err
		}

		now := s.now()
		p, err := s.repo.Create(ctx, Pet{
			UserID:     in.UserID,
			Name:       name,
			BirthDate:  in.BirthDate,
			Gender:     gender,
			Species:    strings.TrimSpace(in.Species),
			Color:      strings.TrimSpace(in.Color),
			HealthInfo: strings.TrimSpace(in.HealthInfo),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return Pet{}, err
	}
	return created, nil
}

// Update pisa los campos no nil. El dueño (nuevo o actual) tiene que existir.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	var updated Pet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return apperr.InvalidInput("Pet name cannot be null")
			}
			p.Name = name
		}
		if in.BirthDate != nil {
			p.BirthDate = in.BirthDate
		}
		if in.Gender != nil {
			g, err := parseGenderPtr(in.Gender)
			if err != nil {
				return err
			}
			p.Gender = g
		}
		if in.Species != nil {
			p.Species = strings.TrimSpace(*in.Species)
		}
		if in.Color != nil {
			p.Color = strings.TrimSpace(*in.Color)
		}
		if in.HealthInfo != nil {
			p.HealthInfo = strings.TrimSpace(*in.HealthInfo)
		}
		if in.UserID != nil {
			p.UserID = *in.UserID
		}
		if err := s.requireUser(ctx, p.UserID); err != nil {
			return err
		}

		p.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, p); err != nil {
			return notFoundByID(err, id)
		}
		updated = p
		return nil
	})
	if err != nil {
		return Pet{}, err
	}
	return updated, nil
}

// Delete falla si la mascota está en una jaula o tiene historias clínicas.
func (s *Service) Delete(ctx context.Context, id int64) (Pet, error) {
	var deleted Pet
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if s.guards.Cages != nil {
			caged, err := s.guards.Cages.ExistsByPet(ctx, id)
			if err != nil {
				return err
			}
			if caged {
				return apperr.Conflict("Cannot delete pet assigned to a cage.")
			}
		}
		if s.guards.Records != nil {
			n, err := s.guards.Records.CountByPet(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict("Cannot delete pet with associated medical records.")
			}
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return notFoundByID(err, id)
		}
		deleted = p
		return nil
	})
	if err != nil {
		return Pet{}, err
	}
	return deleted, nil
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

func parseGenderPtr(s *string) (Gender, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", nil
	}
	g, ok := ParseGender(*s)
	if !ok {
		return "", apperr.InvalidInput("Invalid gender: %s", *s)
	}
	return g, nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Pet not found with id: %d", id)
	}
	return err
}
