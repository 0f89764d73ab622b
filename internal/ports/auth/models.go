package auth

import "strings"

// Claims es el principal resuelto para el request.
type Claims struct {
	UserID int64
	Email  string
	Role   string // OWNER, STAFF, DOCTOR, ADMIN (sin prefijo ROLE_)
}

// HasRole reporta si el principal tiene alguno de roles.
func (c Claims) HasRole(roles ...string) bool {
	mine := NormalizeRole(c.Role)
	for _, r := range roles {
		if NormalizeRole(r) == mine {
			return true
		}
	}
	return false
}

// NormalizeRole quita el prefijo "ROLE_" y pasa a mayúsculas.
func NormalizeRole(role string) string {
	r := strings.ToUpper(strings.TrimSpace(role))
	return strings.TrimPrefix(r, "ROLE_")
}

// Authority arma el nombre que ven los clientes ("ROLE_ADMIN").
func Authority(role string) string {
	return "ROLE_" + NormalizeRole(role)
}
