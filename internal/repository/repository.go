package repository

import (
	"context"

	"motorent-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByIdentityUID(ctx context.Context, uid string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
}

type MotorcycleRepository interface {
	Create(ctx context.Context, moto *domain.Motorcycle) error
	GetByID(ctx context.Context, id string) (*domain.Motorcycle, error)
	Update(ctx context.Context, moto *domain.Motorcycle) error
	SetStatus(ctx context.Context, id string, status domain.MotorcycleStatus) error
	List(ctx context.Context, filters domain.MotorcycleFilters, page, pageSize int32) ([]domain.Motorcycle, int32, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Motorcycle, int32, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type RentalRepository interface {
	Create(ctx context.Context, proposal *domain.RentalProposal) error
	GetByID(ctx context.Context, id string) (*domain.RentalProposal, error)
	// ListApprovedPeriods returns the date ranges of every approved rental
	// for a motorcycle, the read-only input of the availability check.
	ListApprovedPeriods(ctx context.Context, motorcycleID string) ([]domain.RentalPeriod, error)
	// Approve transitions a pending proposal to approved inside a single
	// transaction that re-checks the no-overlap invariant against approved
	// rows. A detected overlap returns *domain.ConflictError and leaves the
	// proposal untouched.
	Approve(ctx context.Context, id string) (*domain.RentalProposal, error)
	Reject(ctx context.Context, id, reason string) (*domain.RentalProposal, error)
	ListByRenter(ctx context.Context, renterID string, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error)
	ListByOwner(ctx context.Context, ownerID string, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	GetByRentalID(ctx context.Context, rentalID string) (*domain.Contract, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id string) error
	ListByRenter(ctx context.Context, renterID string, page, pageSize int32) ([]domain.Payment, int32, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Payment, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}
