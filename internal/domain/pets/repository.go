package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByUser(ctx context.Context, userID int64) ([]Pet, error)
}

// Lookups hacia otros módulos. Se declaran acá para evitar ciclos de imports
// (pets <-> users, pets <-> cages, pets <-> records); los implementan los repos.

type UserLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	IDByEmail(ctx context.Context, email string) (int64, error)
}

type CageLinkChecker interface {
	ExistsByPet(ctx context.Context, petID int64) (bool, error)
}

type RecordCounter interface {
	CountByPet(ctx context.Context, petID int64) (int, error)
}
