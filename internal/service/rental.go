package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	motoRepo     repository.MotorcycleRepository
	profileRepo  repository.ProfileRepository
	contractRepo repository.ContractRepository
	paymentRepo  repository.PaymentRepository
	noteRepo     repository.NotificationRepository
	availability AvailabilityService
	emailSvc     EmailService
	minDays      int32
	timeout      time.Duration
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	motoRepo repository.MotorcycleRepository,
	profileRepo repository.ProfileRepository,
	contractRepo repository.ContractRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	availability AvailabilityService,
	emailSvc EmailService,
	minDurationDays int32,
	timeout time.Duration,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		motoRepo:     motoRepo,
		profileRepo:  profileRepo,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		noteRepo:     noteRepo,
		availability: availability,
		emailSvc:     emailSvc,
		minDays:      minDurationDays,
		timeout:      timeout,
		now:          time.Now,
	}
}

// SubmitProposal validates the request, confirms availability, quotes the
// price and persists the proposal as pending. Validation fails before any
// store call; a conflict prevents creation entirely.
func (s *rentalService) SubmitProposal(ctx context.Context, renterID string, req ProposalRequest) (*domain.RentalProposal, error) {
	if strings.TrimSpace(req.Purpose) == "" {
		return nil, domain.NewValidationError("purpose", "purpose is required")
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date", err.Error())
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("end_date", err.Error())
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "end date must not precede start date")
	}
	if start.Before(utils.Today(s.now())) {
		return nil, domain.NewValidationError("start_date", "start date must not be in the past")
	}
	days := utils.DurationInDays(start, end)
	if days < s.minDays {
		return nil, domain.NewValidationError("end_date",
			fmt.Sprintf("minimum rental length is %d day(s)", s.minDays))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	moto, err := s.motoRepo.GetByID(ctx, req.MotorcycleID)
	if err != nil {
		return nil, err
	}
	if moto.Status != domain.MotorcycleStatusAvailable {
		return nil, domain.NewValidationError("motorcycle_id", "motorcycle is not open for rental")
	}
	if moto.OwnerID == renterID {
		return nil, domain.NewValidationError("motorcycle_id", "owners cannot rent their own motorcycle")
	}

	check, err := s.availability.Check(ctx, moto.ID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, &domain.ConflictError{MotorcycleID: moto.ID, Conflicts: check.Conflicts}
	}

	quote := utils.Quote(moto.DailyRateCents, days)
	proposal := &domain.RentalProposal{
		MotorcycleID:     moto.ID,
		RenterID:         renterID,
		OwnerID:          moto.OwnerID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DailyRateCents:   moto.DailyRateCents,
		DurationDays:     days,
		BaseAmountCents:  quote.BaseCents,
		ServiceFeeCents:  quote.ServiceFeeCents,
		TotalAmountCents: quote.TotalCents,
		Purpose:          strings.TrimSpace(req.Purpose),
		AdditionalInfo:   strings.TrimSpace(req.AdditionalInfo),
		Status:           domain.ProposalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	s.notifyOwnerOfProposal(ctx, proposal, moto)
	return proposal, nil
}

// ApproveProposal is the owner's accept action. The repository runs the
// overlap guard transactionally, so a second overlapping pending proposal
// can never slip through between check and write.
func (s *rentalService) ApproveProposal(ctx context.Context, ownerID, rentalID string) (*domain.RentalProposal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	proposal, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if proposal.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	if proposal.Status != domain.ProposalStatusPending {
		return nil, domain.NewValidationError("status", "proposal is not pending")
	}

	approved, err := s.rentalRepo.Approve(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if err := s.motoRepo.SetStatus(ctx, approved.MotorcycleID, domain.MotorcycleStatusRented); err != nil {
		logger.Error("Failed to mark motorcycle rented after approval", "motorcycle_id", approved.MotorcycleID, "error", err)
	}

	contract := &domain.Contract{RentalID: approved.ID, Status: domain.ContractStatusPending}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("proposal approved but contract creation failed: %w", err)
	}

	payment := &domain.Payment{
		RentalID:    approved.ID,
		RenterID:    approved.RenterID,
		OwnerID:     approved.OwnerID,
		AmountCents: approved.TotalAmountCents,
		DueDate:     approved.StartDate,
		Status:      domain.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("proposal approved but payment creation failed: %w", err)
	}

	s.notifyRenterOfDecision(ctx, approved, "")
	return approved, nil
}

func (s *rentalService) RejectProposal(ctx context.Context, ownerID, rentalID, reason string) (*domain.RentalProposal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	proposal, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if proposal.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	if proposal.Status != domain.ProposalStatusPending {
		return nil, domain.NewValidationError("status", "proposal is not pending")
	}

	rejected, err := s.rentalRepo.Reject(ctx, rentalID, reason)
	if err != nil {
		return nil, err
	}

	s.notifyRenterOfDecision(ctx, rejected, reason)
	return rejected, nil
}

func (s *rentalService) GetProposal(ctx context.Context, userID, rentalID string) (*domain.RentalProposal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	proposal, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if proposal.RenterID != userID && proposal.OwnerID != userID {
		return nil, domain.ErrUnauthorized
	}
	if moto, err := s.motoRepo.GetByID(ctx, proposal.MotorcycleID); err == nil {
		proposal.Motorcycle = moto
	}
	return proposal, nil
}

func (s *rentalService) ListSent(ctx context.Context, renterID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.rentalRepo.ListByRenter(ctx, renterID, status, page, pageSize)
}

func (s *rentalService) ListReceived(ctx context.Context, ownerID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.rentalRepo.ListByOwner(ctx, ownerID, status, page, pageSize)
}

// Notification fan-out is best effort. A failed email or notification row
// never rolls back a persisted state change.
func (s *rentalService) notifyOwnerOfProposal(ctx context.Context, p *domain.RentalProposal, moto *domain.Motorcycle) {
	owner, err := s.profileRepo.GetByID(ctx, p.OwnerID)
	if err != nil {
		logger.Warn("Skipping proposal notification, owner profile unavailable", "owner_id", p.OwnerID, "error", err)
		return
	}
	renter, err := s.profileRepo.GetByID(ctx, p.RenterID)
	if err != nil {
		logger.Warn("Skipping proposal notification, renter profile unavailable", "renter_id", p.RenterID, "error", err)
		return
	}

	motoName := moto.Brand + " " + moto.Model
	_ = s.emailSvc.SendProposalReceived(ctx, owner.Email, renter.FullName, motoName)
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:  owner.ID,
		Title:   "Nova proposta de aluguel",
		Message: fmt.Sprintf("%s enviou uma proposta para %s", renter.FullName, motoName),
		Attributes: map[string]string{
			"type":      "PROPOSAL_RECEIVED",
			"rental_id": p.ID,
		},
	})
}

func (s *rentalService) notifyRenterOfDecision(ctx context.Context, p *domain.RentalProposal, reason string) {
	renter, err := s.profileRepo.GetByID(ctx, p.RenterID)
	if err != nil {
		logger.Warn("Skipping decision notification, renter profile unavailable", "renter_id", p.RenterID, "error", err)
		return
	}
	moto, err := s.motoRepo.GetByID(ctx, p.MotorcycleID)
	if err != nil {
		logger.Warn("Skipping decision notification, motorcycle unavailable", "motorcycle_id", p.MotorcycleID, "error", err)
		return
	}

	motoName := moto.Brand + " " + moto.Model
	if p.Status == domain.ProposalStatusApproved {
		owner, err := s.profileRepo.GetByID(ctx, p.OwnerID)
		ownerName := ""
		if err == nil {
			ownerName = owner.FullName
		}
		_ = s.emailSvc.SendProposalApproved(ctx, renter.Email, motoName, ownerName)
		_ = s.noteRepo.Create(ctx, &domain.Notification{
			UserID:  renter.ID,
			Title:   "Proposta aprovada",
			Message: fmt.Sprintf("Sua proposta para %s foi aprovada", motoName),
			Attributes: map[string]string{
				"type":      "PROPOSAL_APPROVED",
				"rental_id": p.ID,
			},
		})
		return
	}

	_ = s.emailSvc.SendProposalRejected(ctx, renter.Email, motoName, reason)
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		UserID:  renter.ID,
		Title:   "Proposta recusada",
		Message: fmt.Sprintf("Sua proposta para %s foi recusada", motoName),
		Attributes: map[string]string{
			"type":      "PROPOSAL_REJECTED",
			"rental_id": p.ID,
		},
	})
}
