package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, o Offering) (Offering, error)
	Update(ctx context.Context, o Offering) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (Offering, error)
	List(ctx context.Context) ([]Offering, error)
}
