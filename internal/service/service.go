package service

import (
	"context"

	"motorent-backend/internal/domain"
)

type ProfileService interface {
	// SyncProfile creates or refreshes the application profile for an
	// externally authenticated user.
	SyncProfile(ctx context.Context, identityUID, email string, input ProfileInput) (*domain.Profile, error)
	GetByIdentity(ctx context.Context, identityUID string) (*domain.Profile, error)
}

// ProfileInput carries the caller-editable profile fields.
type ProfileInput struct {
	FullName    string
	Phone       string
	Role        domain.ProfileRole
	CompanyName string
}

type MotorcycleService interface {
	AddMotorcycle(ctx context.Context, ownerID string, moto *domain.Motorcycle) error
	GetMotorcycle(ctx context.Context, id string) (*domain.Motorcycle, error)
	UpdateMotorcycle(ctx context.Context, ownerID string, moto *domain.Motorcycle) error
	RemoveMotorcycle(ctx context.Context, ownerID, id string) error
	ListMotorcycles(ctx context.Context, filters domain.MotorcycleFilters, page, pageSize int32) ([]domain.Motorcycle, int32, error)
	ListMyMotorcycles(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Motorcycle, int32, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// AvailabilityResult reports whether a candidate range is bookable and,
// when it is not, which approved rentals block it.
type AvailabilityResult struct {
	Available bool                  `json:"available"`
	Conflicts []domain.RentalPeriod `json:"conflicts,omitempty"`
}

type AvailabilityService interface {
	Check(ctx context.Context, motorcycleID, startDate, endDate string) (*AvailabilityResult, error)
}

// ProposalRequest is a renter's submission for a rental.
type ProposalRequest struct {
	MotorcycleID   string `json:"motorcycle_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Purpose        string `json:"purpose"`
	AdditionalInfo string `json:"additional_info"`
}

type RentalService interface {
	SubmitProposal(ctx context.Context, renterID string, req ProposalRequest) (*domain.RentalProposal, error)
	ApproveProposal(ctx context.Context, ownerID, rentalID string) (*domain.RentalProposal, error)
	RejectProposal(ctx context.Context, ownerID, rentalID, reason string) (*domain.RentalProposal, error)
	GetProposal(ctx context.Context, userID, rentalID string) (*domain.RentalProposal, error)
	ListSent(ctx context.Context, renterID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error)
	ListReceived(ctx context.Context, ownerID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error)
}

type ContractService interface {
	GetContract(ctx context.Context, userID, contractID string) (*domain.Contract, error)
	SignContract(ctx context.Context, renterID, contractID string) (*domain.Contract, error)
	CancelContract(ctx context.Context, userID, contractID string) (*domain.Contract, error)
}

type PaymentService interface {
	ListPayments(ctx context.Context, userID string, asOwner bool, page, pageSize int32) ([]domain.Payment, int32, error)
	MarkPaid(ctx context.Context, ownerID, paymentID string) (*domain.Payment, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type EmailService interface {
	SendProposalReceived(ctx context.Context, ownerEmail, renterName, motoName string) error
	SendProposalApproved(ctx context.Context, renterEmail, motoName, ownerName string) error
	SendProposalRejected(ctx context.Context, renterEmail, motoName, reason string) error
	SendContractSigned(ctx context.Context, ownerEmail, renterName, motoName string) error
	SendRentalStartReminder(ctx context.Context, renterEmail, motoName, startDate string) error
	SendPaymentOverdue(ctx context.Context, renterEmail, motoName, dueDate string) error
}
