package bookings

import "context"

type Repository interface {
	Create(ctx context.Context, b Booking) (Booking, error)
	Update(ctx context.Context, b Booking) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
	ListByService(ctx context.Context, serviceID int64) ([]Booking, error)
}

// ServiceLookup y UserLookup evitan importar catalog/users (rompe ciclos).
type ServiceLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type UserLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	IDByEmail(ctx context.Context, email string) (int64, error)
}
