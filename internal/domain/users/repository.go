package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// DependentCounter cuenta filas de otro módulo que apuntan a un usuario.
// Lo implementan los repos de pets, bookings y records.
type DependentCounter interface {
	CountByUser(ctx context.Context, userID int64) (int, error)
}
