package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/ports/auth"
	"pet-clinic-admin/internal/ports/tx"
)

const (
	msgEmailOrPhoneTaken = "Email or phone number already in use"
	msgHasDependents     = "Cannot delete user with associated records"
)

// Dependents agrupa los módulos que bloquean el borrado de un usuario.
type Dependents struct {
	Pets     DependentCounter
	Bookings DependentCounter
	Records  DependentCounter
}

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tx     tx.Transactor
	deps   Dependents
	now    func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, transactor tx.Transactor, deps Dependents) *Service {
	if transactor == nil {
		transactor = tx.None
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tx:     transactor,
		deps:   deps,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name     string
	Password string
	Phone    string
	Email    string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name     *string
	Password *string
	Phone    *string
	Email    *string
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, notFoundByID(err, id)
	}
	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.NotFound("User not found with email: %s", email)
		}
		return User{}, err
	}
	return u, nil
}

// Create registra un usuario nuevo. El rol inicial siempre es OWNER.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	var created User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if email != "" {
			taken, err := s.repo.ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if taken {
				return apperr.Conflict("Email already in use")
			}
		}
		if phone != "" {
			taken, err := s.repo.ExistsByPhone(ctx, phone)
			if err != nil {
				return err
			}
			if taken {
				return apperr.Conflict("Phone number already in use")
			}
		}
		if in.Password == "" {
			return apperr.InvalidInput("Password cannot be empty")
		}
		if email == "" {
			return apperr.InvalidInput("Email cannot be empty")
		}

		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return err
		}

		now := s.now()
		u, err := s.repo.Create(ctx, User{
			Name:         strings.TrimSpace(in.Name),
			PasswordHash: hash,
			Phone:        phone,
			Email:        email,
			Role:         RoleOwner,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return conflictAs(err, msgEmailOrPhoneTaken)
		}
		created = u
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	var updated User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			u.Name = strings.TrimSpace(*in.Name)
		}
		if in.Password != nil {
			hash, err := s.hasher.Hash(*in.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		if in.Email != nil {
			email := strings.TrimSpace(*in.Email)
			if email != u.Email {
				taken, err := s.repo.ExistsByEmail(ctx, email)
				if err != nil {
					return err
				}
				if taken {
					return apperr.Conflict("Email already in use")
				}
				u.Email = email
			}
		}
		if in.Phone != nil {
			phone := strings.TrimSpace(*in.Phone)
			if phone != u.Phone {
				taken, err := s.repo.ExistsByPhone(ctx, phone)
				if err != nil {
					return err
				}
				if taken {
					return apperr.Conflict("Phone number already in use")
				}
				u.Phone = phone
			}
		}

		u.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, u); err != nil {
			return conflictAs(notFoundByID(err, id), msgEmailOrPhoneTaken)
		}
		updated = u
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

// Delete falla si el usuario todavía tiene mascotas, reservas o historias clínicas.
func (s *Service) Delete(ctx context.Context, id int64) (User, error) {
	var deleted User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}

		for _, c := range []DependentCounter{s.deps.Pets, s.deps.Bookings, s.deps.Records} {
			if c == nil {
				continue
			}
			n, err := c.CountByUser(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return apperr.Conflict(msgHasDependents)
			}
		}

		if err := s.repo.Delete(ctx, id); err != nil {
			return conflictAs(notFoundByID(err, id), msgHasDependents)
		}
		deleted = u
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return deleted, nil
}

// Current resuelve el usuario del principal por email.
func (s *Service) Current(ctx context.Context, principal auth.Claims) (User, error) {
	if strings.TrimSpace(principal.Email) == "" {
		return User{}, apperr.Unauthorized("Authentication required")
	}
	return s.GetByEmail(ctx, principal.Email)
}

func (s *Service) GetRole(ctx context.Context, id int64) (Role, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int64, newRole string) (User, error) {
	var updated User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		u, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		role, ok := ParseRole(newRole)
		if !ok {
			return apperr.InvalidInput("Invalid role: %s", newRole)
		}
		u.Role = role
		u.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, u); err != nil {
			return notFoundByID(err, id)
		}
		updated = u
		return nil
	})
	if err != nil {
		return User{}, err
	}
	return updated, nil
}

// Authenticate valida email + password. Email desconocido y password
// incorrecto devuelven el mismo Unauthorized.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	invalid := apperr.Unauthorized("Invalid email or password")

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, invalid
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, invalid
		}
		return User{}, err
	}
	if !s.hasher.Matches(u.PasswordHash, password) {
		return User{}, invalid
	}
	return u, nil
}

func notFoundByID(err error, id int64) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("User not found with id: %d", id)
	}
	return err
}

// conflictAs da mensaje de dominio al ErrConflict del store (carrera contra
// un UNIQUE o una FK que los chequeos previos no vieron).
func conflictAs(err error, msg string) error {
	if errors.Is(err, apperr.ErrConflict) {
		return apperr.Conflict("%s", msg)
	}
	return err
}
