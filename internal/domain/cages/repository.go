package cages

import "context"

type Repository interface {
	Create(ctx context.Context, c Cage) (Cage, error)
	Update(ctx context.Context, c Cage) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (Cage, error)
	GetByPet(ctx context.Context, petID int64) (Cage, error)
	List(ctx context.Context) ([]Cage, error)
	ListByStatus(ctx context.Context, status Status) ([]Cage, error)
	// ListByTypeAndSize compara sin importar mayúsculas.
	ListByTypeAndSize(ctx context.Context, cageType, size string) ([]Cage, error)
}

// PetLookup evita importar el paquete pets.
type PetLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
