package service

import (
	"context"
	"fmt"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/utils"
)

type availabilityService struct {
	rentalRepo repository.RentalRepository
	timeout    time.Duration
}

func NewAvailabilityService(rentalRepo repository.RentalRepository, timeout time.Duration) AvailabilityService {
	return &availabilityService{rentalRepo: rentalRepo, timeout: timeout}
}

// Check fetches the approved rentals for a motorcycle and scans them with
// the inclusive overlap test. A store failure is returned as-is; an
// unreachable store never reads as "available".
func (s *availabilityService) Check(ctx context.Context, motorcycleID, startDate, endDate string) (*AvailabilityResult, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date", err.Error())
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, domain.NewValidationError("end_date", err.Error())
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "end date must not precede start date")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	periods, err := s.rentalRepo.ListApprovedPeriods(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}

	var conflicts []domain.RentalPeriod
	for _, p := range periods {
		// A stored period that cannot be parsed must fail the check; it
		// could be hiding a reservation.
		pStart, err := utils.ParseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("rental %s: %w", p.RentalID, domain.ErrDataUnavailable)
		}
		pEnd, err := utils.ParseDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("rental %s: %w", p.RentalID, domain.ErrDataUnavailable)
		}
		if utils.RangesOverlap(start, end, pStart, pEnd) {
			conflicts = append(conflicts, p)
		}
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
