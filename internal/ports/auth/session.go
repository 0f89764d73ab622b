package auth

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore guarda token -> email del usuario logueado.
type SessionStore interface {
	Create(ctx context.Context, email string, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthVerifier resuelve el token de sesión (bearer o cookie) a Claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
