package postgres

import (
	"database/sql"

	"motorent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.MotorcycleRepository
	repository.RentalRepository
	repository.ContractRepository
	repository.PaymentRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		ProfileRepository:      NewProfileRepository(db),
		MotorcycleRepository:   NewMotorcycleRepository(db),
		RentalRepository:       NewRentalRepository(db),
		ContractRepository:     NewContractRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
