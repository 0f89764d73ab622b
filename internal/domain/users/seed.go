package users

import (
	"context"
	"errors"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/platform/logger"
)

// SeedUser es una cuenta que debe existir al arrancar.
type SeedUser struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     Role
}

// DefaultSeedUsers son las cuentas de dev, una por rol.
var DefaultSeedUsers = []SeedUser{
	{Name: "Admin", Email: "admin@example.com", Phone: "0123456789", Password: "admin123", Role: RoleAdmin},
	{Name: "Owner", Email: "owner@example.com", Phone: "0123456790", Password: "owner123", Role: RoleOwner},
	{Name: "Staff", Email: "staff@example.com", Phone: "0123456791", Password: "staff123", Role: RoleStaff},
	{Name: "Doctor", Email: "doctor@example.com", Phone: "0123456792", Password: "doctor123", Role: RoleDoctor},
}

// Seed crea las cuentas que falten. Las que ya existen (por email) no se tocan.
func (s *Service) Seed(ctx context.Context, log logger.Logger, seeds []SeedUser) error {
	if log == nil {
		log = logger.Nop()
	}
	for _, su := range seeds {
		_, err := s.repo.GetByEmail(ctx, su.Email)
		if err == nil {
			log.Info("seed user already exists", map[string]any{"email": su.Email, "role": string(su.Role)})
			continue
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}

		hash, err := s.hasher.Hash(su.Password)
		if err != nil {
			return err
		}
		now := s.now()
		if _, err := s.repo.Create(ctx, User{
			Name:         su.Name,
			PasswordHash: hash,
			Phone:        su.Phone,
			Email:        su.Email,
			Role:         su.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		log.Info("seed user created", map[string]any{"email": su.Email, "role": string(su.Role)})
	}
	return nil
}
