package records

import "context"

type Repository interface {
	Create(ctx context.Context, m MedicalRecord) (MedicalRecord, error)
	Update(ctx context.Context, m MedicalRecord) error
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	List(ctx context.Context) ([]MedicalRecord, error)
	ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
	ListByUser(ctx context.Context, userID int64) ([]MedicalRecord, error)
}

type PetLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type UserLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	IDByEmail(ctx context.Context, email string) (int64, error)
}
