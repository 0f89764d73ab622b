package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-clinic-admin/internal/domain/users"
	"pet-clinic-admin/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (users.User, error)
}

// Verifier implementa auth.AuthVerifier: token -> email (store) -> usuario.
// El rol se resuelve en cada request.
type Verifier struct {
	store auth.SessionStore
	users UserFinder
}

func NewVerifier(store auth.SessionStore, users UserFinder) *Verifier {
	return &Verifier{store: store, users: users}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	email, err := v.store.Lookup(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}

	u, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("session user: %w", err)
	}

	return auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   string(u.Role),
	}, nil
}
