package pets

import (
	"strings"
	"time"
)

// Gender define el sexo de la mascota.
// @Enum MALE, FEMALE
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender matchea sin importar mayúsculas.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, true
	default:
		return "", false
	}
}

// Pet representa el perfil básico de una mascota registrada en la clínica.
type Pet struct {
	ID     int64
	UserID int64 // dueño

	Name      string
	BirthDate *time.Time
	Gender    Gender // vacío = sin informar
	Species   string
	Color     string

	HealthInfo string

	CreatedAt time.Time
	UpdatedAt time.Time
}
