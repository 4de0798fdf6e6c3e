package service

import (
	"context"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	timeout     time.Duration
}

func NewPaymentService(paymentRepo repository.PaymentRepository, timeout time.Duration) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, timeout: timeout}
}

func (s *paymentService) ListPayments(ctx context.Context, userID string, asOwner bool, page, pageSize int32) ([]domain.Payment, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if asOwner {
		return s.paymentRepo.ListByOwner(ctx, userID, page, pageSize)
	}
	return s.paymentRepo.ListByRenter(ctx, userID, page, pageSize)
}

// MarkPaid is the owner acknowledging receipt. Settlement itself happens
// outside the platform.
func (s *paymentService) MarkPaid(ctx context.Context, ownerID, paymentID string) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	if payment.Status == domain.PaymentStatusPaid {
		return payment, nil
	}

	if err := s.paymentRepo.MarkPaid(ctx, paymentID); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetByID(ctx, paymentID)
}
