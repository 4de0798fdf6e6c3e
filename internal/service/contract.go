package service

import (
	"context"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
)

type contractService struct {
	contractRepo repository.ContractRepository
	rentalRepo   repository.RentalRepository
	motoRepo     repository.MotorcycleRepository
	profileRepo  repository.ProfileRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailService
	timeout      time.Duration
}

func NewContractService(
	contractRepo repository.ContractRepository,
	rentalRepo repository.RentalRepository,
	motoRepo repository.MotorcycleRepository,
	profileRepo repository.ProfileRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	timeout time.Duration,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		rentalRepo:   rentalRepo,
		motoRepo:     motoRepo,
		profileRepo:  profileRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
		timeout:      timeout,
	}
}

// load fetches a contract with its rental and checks the caller is a party
// to it.
func (s *contractService) load(ctx context.Context, userID, contractID string) (*domain.Contract, *domain.RentalProposal, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, nil, err
	}
	rental, err := s.rentalRepo.GetByID(ctx, contract.RentalID)
	if err != nil {
		return nil, nil, err
	}
	if rental.RenterID != userID && rental.OwnerID != userID {
		return nil, nil, domain.ErrUnauthorized
	}
	contract.Rental = rental
	return contract, rental, nil
}

func (s *contractService) GetContract(ctx context.Context, userID, contractID string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contract, _, err := s.load(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// SignContract records the renter's signature. Only the renter of the
// underlying rental may sign, and only while the contract is pending.
func (s *contractService) SignContract(ctx context.Context, renterID, contractID string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contract, rental, err := s.load(ctx, renterID, contractID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != renterID {
		return nil, domain.ErrUnauthorized
	}
	if contract.Status != domain.ContractStatusPending {
		return nil, domain.NewValidationError("status", "contract is not pending")
	}

	if err := s.contractRepo.UpdateStatus(ctx, contract.ID, domain.ContractStatusSigned); err != nil {
		return nil, err
	}
	contract.Status = domain.ContractStatusSigned

	s.notifyOwnerOfSignature(ctx, rental)
	return contract, nil
}

func (s *contractService) CancelContract(ctx context.Context, userID, contractID string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contract, rental, err := s.load(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}
	if contract.Status == domain.ContractStatusCancelled {
		return contract, nil
	}

	if err := s.contractRepo.UpdateStatus(ctx, contract.ID, domain.ContractStatusCancelled); err != nil {
		return nil, err
	}
	contract.Status = domain.ContractStatusCancelled

	// A cancelled contract frees the motorcycle for new proposals.
	if err := s.motoRepo.SetStatus(ctx, rental.MotorcycleID, domain.MotorcycleStatusAvailable); err != nil {
		logger.Error("Failed to release motorcycle after contract cancellation", "motorcycle_id", rental.MotorcycleID, "error", err)
	}
	return contract, nil
}

func (s *contractService) notifyOwnerOfSignature(ctx context.Context, rental *domain.RentalProposal) {
	owner, err := s.profileRepo.GetByID(ctx, rental.OwnerID)
	if err != nil {
		logger.Warn("Skipping signature notification, owner profile unavailable", "owner_id", rental.OwnerID, "error", err)
		return
	}
	renter, err := s.profileRepo.GetByID(ctx, rental.RenterID)
	if err != nil {
		logger.Warn("Skipping signature notification, renter profile unavailable", "renter_id", rental.RenterID, "error", err)
		return
	}
	moto, err := s.motoRepo.GetByID(ctx, rental.MotorcycleID)
	if err != nil {
		logger.Warn("Skipping signature notification, motorcycle unavailable", "motorcycle_id", rental.MotorcycleID, "error", err)
		return
	}

	motoName := moto.Brand + " " + moto.Model
	_ = s.emailSvc.SendContractSigned(ctx, owner.Email, renter.FullName, motoName)
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:  owner.ID,
		Title:   "Contrato assinado",
		Message: renter.FullName + " assinou o contrato de " + motoName,
		Attributes: map[string]string{
			"type":      "CONTRACT_SIGNED",
			"rental_id": rental.ID,
		},
	})
}
