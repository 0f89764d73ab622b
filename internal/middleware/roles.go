package middleware

import (
	"net/http"

	"pet-clinic-admin/internal/platform/apperr"
	"pet-clinic-admin/internal/platform/httpjson"
)

const (
	msgAuthRequired = "Authentication required"
	msgForbidden    = "You don't have permission to access this resource"
)

// RequireAuth corta con 401 si no hay principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := GetClaims(r.Context()); !ok || c.Email == "" {
			httpjson.WriteError(w, r, apperr.Unauthorized(msgAuthRequired))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles exige principal con alguno de roles (401 sin principal, 403 con rol equivocado).
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := GetClaims(r.Context())
			if !ok || c.Email == "" {
				httpjson.WriteError(w, r, apperr.Unauthorized(msgAuthRequired))
				return
			}
			if !c.HasRole(roles...) {
				httpjson.WriteError(w, r, apperr.Forbidden(msgForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
