package cages

import (
	"strings"
	"time"
)

// Status de ocupación de la jaula.
// @Enum AVAILABLE, OCCUPIED, CLEANING
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOccupied  Status = "OCCUPIED"
	StatusCleaning  Status = "CLEANING"
)

// ParseStatus matchea sin importar mayúsculas.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusAvailable, StatusOccupied, StatusCleaning:
		return st, true
	default:
		return "", false
	}
}

// Cage es una jaula de internación. Como mucho una mascota por jaula.
type Cage struct {
	ID int64

	Type   string
	Size   string
	Status Status

	StartDate *time.Time
	EndDate   *time.Time

	PetID *int64 // nil = vacía

	CreatedAt time.Time
	UpdatedAt time.Time
}
