package postgres

import "database/sql"

// Store agrupa los repos Postgres sobre un mismo pool.
type Store struct {
	Users    *UsersRepo
	Pets     *PetsRepo
	Cages    *CagesRepo
	Records  *RecordsRepo
	Services *ServicesRepo
	Bookings *BookingsRepo

	Tx *Transactor
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		Users:    NewUsersRepo(db),
		Pets:     NewPetsRepo(db),
		Cages:    NewCagesRepo(db),
		Records:  NewRecordsRepo(db),
		Services: NewServicesRepo(db),
		Bookings: NewBookingsRepo(db),
		Tx:       NewTransactor(db),
	}
}
