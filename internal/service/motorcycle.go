package service

import (
	"context"
	"strings"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type motorcycleService struct {
	motoRepo    repository.MotorcycleRepository
	profileRepo repository.ProfileRepository
	timeout     time.Duration
}

func NewMotorcycleService(motoRepo repository.MotorcycleRepository, profileRepo repository.ProfileRepository, timeout time.Duration) MotorcycleService {
	return &motorcycleService{motoRepo: motoRepo, profileRepo: profileRepo, timeout: timeout}
}

func validateMotorcycle(moto *domain.Motorcycle) error {
	if strings.TrimSpace(moto.Brand) == "" {
		return domain.NewValidationError("brand", "brand is required")
	}
	if strings.TrimSpace(moto.Model) == "" {
		return domain.NewValidationError("model", "model is required")
	}
	if moto.DailyRateCents <= 0 {
		return domain.NewValidationError("daily_rate", "daily rate must be positive")
	}
	return nil
}

func (s *motorcycleService) AddMotorcycle(ctx context.Context, ownerID string, moto *domain.Motorcycle) error {
	if err := validateMotorcycle(moto); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	owner, err := s.profileRepo.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner.Role != domain.ProfileRoleOwner {
		return domain.ErrUnauthorized
	}

	moto.OwnerID = ownerID
	if moto.Status == "" {
		moto.Status = domain.MotorcycleStatusAvailable
	}
	return s.motoRepo.Create(ctx, moto)
}

func (s *motorcycleService) GetMotorcycle(ctx context.Context, id string) (*domain.Motorcycle, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.motoRepo.GetByID(ctx, id)
}

func (s *motorcycleService) UpdateMotorcycle(ctx context.Context, ownerID string, moto *domain.Motorcycle) error {
	if err := validateMotorcycle(moto); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.motoRepo.GetByID(ctx, moto.ID)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}

	moto.OwnerID = current.OwnerID
	return s.motoRepo.Update(ctx, moto)
}

// RemoveMotorcycle delists a motorcycle rather than deleting the row, so
// past rentals keep a valid reference.
func (s *motorcycleService) RemoveMotorcycle(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.motoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != ownerID {
		return domain.ErrUnauthorized
	}
	if current.Status == domain.MotorcycleStatusRented {
		return domain.NewValidationError("status", "cannot remove a motorcycle with an active rental")
	}

	return s.motoRepo.SetStatus(ctx, id, domain.MotorcycleStatusUnavailable)
}

func (s *motorcycleService) ListMotorcycles(ctx context.Context, filters domain.MotorcycleFilters, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.motoRepo.List(ctx, filters, page, pageSize)
}

func (s *motorcycleService) ListMyMotorcycles(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.motoRepo.ListByOwner(ctx, ownerID, page, pageSize)
}

func (s *motorcycleService) ListCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.motoRepo.ListCategories(ctx)
}
