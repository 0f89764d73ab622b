package bookings

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return st, true
	default:
		return "", false
	}
}

type Booking struct {
	ID int64

	StartDate time.Time
	EndDate   *time.Time
	Status    Status
	Notes     string

	UserID    int64
	ServiceID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
