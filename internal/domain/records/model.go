package records

import "time"

// MedicalRecord es una entrada de historia clínica: una mascota atendida por un usuario (doctor).
type MedicalRecord struct {
	ID int64

	Diagnosis    string
	Prescription string
	Notes        string

	NextMeetingDate *time.Time

	PetID  int64
	UserID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
