package postgres

import (
	"database/sql"

	"agrirent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.ProviderRepository
	repository.EquipmentRepository
	repository.RequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		ProviderRepository:  NewProviderRepository(db),
		EquipmentRepository: NewEquipmentRepository(db),
		RequestRepository:   NewRequestRepository(db),
	}
}
