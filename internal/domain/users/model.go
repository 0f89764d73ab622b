package users

import (
	"strings"
	"time"
)

// Role define los roles de la clínica.
// @Enum OWNER, STAFF, DOCTOR, ADMIN
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleStaff  Role = "STAFF"
	RoleDoctor Role = "DOCTOR"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole matchea sin importar mayúsculas.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleOwner, RoleStaff, RoleDoctor, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// User es una cuenta de la clínica (dueño, staff, doctor o admin).
type User struct {
	ID int64

	Name         string
	PasswordHash string
	Phone        string
	Email        string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
