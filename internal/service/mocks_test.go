package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByIdentityUID(ctx context.Context, uid string) (*domain.Profile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) Update(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) SetStatus(ctx context.Context, id string, status domain.MotorcycleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) List(ctx context.Context, filters domain.MotorcycleFilters, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	args := m.Called(ctx, filters, page, pageSize)
	return args.Get(0).([]domain.Motorcycle), args.Get(1).(int32), args.Error(2)
}
func (m *MockMotorcycleRepo) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Motorcycle, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Motorcycle), args.Get(1).(int32), args.Error(2)
}
func (m *MockMotorcycleRepo) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, proposal *domain.RentalProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.RentalProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalProposal), args.Error(1)
}
func (m *MockRentalRepo) ListApprovedPeriods(ctx context.Context, motorcycleID string) ([]domain.RentalPeriod, error) {
	args := m.Called(ctx, motorcycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalPeriod), args.Error(1)
}
func (m *MockRentalRepo) Approve(ctx context.Context, id string) (*domain.RentalProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalProposal), args.Error(1)
}
func (m *MockRentalRepo) Reject(ctx context.Context, id, reason string) (*domain.RentalProposal, error) {
	args := m.Called(ctx, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalProposal), args.Error(1)
}
func (m *MockRentalRepo) ListByRenter(ctx context.Context, renterID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	args := m.Called(ctx, renterID, status, page, pageSize)
	return args.Get(0).([]domain.RentalProposal), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListByOwner(ctx context.Context, ownerID, status string, page, pageSize int32) ([]domain.RentalProposal, int32, error) {
	args := m.Called(ctx, ownerID, status, page, pageSize)
	return args.Get(0).([]domain.RentalProposal), args.Get(1).(int32), args.Error(2)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) GetByRentalID(ctx context.Context, rentalID string) (*domain.Contract, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkPaid(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByRenter(ctx context.Context, renterID string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, renterID, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}
func (m *MockPaymentRepo) ListByOwner(ctx context.Context, ownerID string, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendProposalReceived(ctx context.Context, ownerEmail, renterName, motoName string) error {
	args := m.Called(ctx, ownerEmail, renterName, motoName)
	return args.Error(0)
}
func (m *MockEmailService) SendProposalApproved(ctx context.Context, renterEmail, motoName, ownerName string) error {
	args := m.Called(ctx, renterEmail, motoName, ownerName)
	return args.Error(0)
}
func (m *MockEmailService) SendProposalRejected(ctx context.Context, renterEmail, motoName, reason string) error {
	args := m.Called(ctx, renterEmail, motoName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendContractSigned(ctx context.Context, ownerEmail, renterName, motoName string) error {
	args := m.Called(ctx, ownerEmail, renterName, motoName)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalStartReminder(ctx context.Context, renterEmail, motoName, startDate string) error {
	args := m.Called(ctx, renterEmail, motoName, startDate)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentOverdue(ctx context.Context, renterEmail, motoName, dueDate string) error {
	args := m.Called(ctx, renterEmail, motoName, dueDate)
	return args.Error(0)
}
