package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

func TestAvailabilityCheck_NoApprovedRentals(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return([]domain.RentalPeriod{}, nil)
	svc := NewAvailabilityService(repo, 5*time.Second)

	result, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")

	assert.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Conflicts)
}

func TestAvailabilityCheck_ReportsEveryConflict(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return([]domain.RentalPeriod{
		{RentalID: "r1", StartDate: "2025-06-08", EndDate: "2025-06-11"},
		{RentalID: "r2", StartDate: "2025-06-14", EndDate: "2025-06-16"},
		{RentalID: "r3", StartDate: "2025-07-01", EndDate: "2025-07-05"},
	}, nil)
	svc := NewAvailabilityService(repo, 5*time.Second)

	result, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Len(t, result.Conflicts, 2)
	assert.Equal(t, "r1", result.Conflicts[0].RentalID)
	assert.Equal(t, "r2", result.Conflicts[1].RentalID)
}

func TestAvailabilityCheck_SharedBoundaryDayConflicts(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return([]domain.RentalPeriod{
		{RentalID: "r1", StartDate: "2025-06-05", EndDate: "2025-06-10"},
	}, nil)
	svc := NewAvailabilityService(repo, 5*time.Second)

	result, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-12")

	assert.NoError(t, err)
	assert.False(t, result.Available)
}

func TestAvailabilityCheck_Idempotent(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return([]domain.RentalPeriod{
		{RentalID: "r1", StartDate: "2025-06-08", EndDate: "2025-06-11"},
	}, nil)
	svc := NewAvailabilityService(repo, 5*time.Second)

	first, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")
	assert.NoError(t, err)
	second, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailabilityCheck_InvalidInput(t *testing.T) {
	repo := new(MockRentalRepo)
	svc := NewAvailabilityService(repo, 5*time.Second)

	_, err := svc.Check(context.Background(), "moto-1", "bogus", "2025-06-15")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Check(context.Background(), "moto-1", "2025-06-15", "2025-06-10")
	assert.True(t, domain.IsValidation(err))

	repo.AssertNotCalled(t, "ListApprovedPeriods", mock.Anything, mock.Anything)
}

func TestAvailabilityCheck_StoreFailureNeverReadsAvailable(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return(nil, domain.ErrDataUnavailable)
	svc := NewAvailabilityService(repo, 5*time.Second)

	result, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Nil(t, result)
}

func TestAvailabilityCheck_CorruptStoredPeriodFailsCheck(t *testing.T) {
	repo := new(MockRentalRepo)
	repo.On("ListApprovedPeriods", mock.Anything, "moto-1").Return([]domain.RentalPeriod{
		{RentalID: "r1", StartDate: "not-a-date", EndDate: "2025-06-11"},
	}, nil)
	svc := NewAvailabilityService(repo, 5*time.Second)

	_, err := svc.Check(context.Background(), "moto-1", "2025-06-10", "2025-06-15")

	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}
