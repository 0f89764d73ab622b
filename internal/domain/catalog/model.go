package catalog

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryEmergency Category = "EMERGENCY"
	CategoryHealth    Category = "HEALTH"
	CategoryCare      Category = "CARE"
	CategoryMedical   Category = "MEDICAL"
)

func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryEmergency, CategoryHealth, CategoryCare, CategoryMedical:
		return c, true
	default:
		return "", false
	}
}

// Offering es un servicio reservable de la clínica (baño, consulta, urgencia...).
type Offering struct {
	ID int64

	Name        string
	Category    Category
	Description string
	Price       *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
