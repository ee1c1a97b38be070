package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/repository"
	"agrirent-backend/internal/security"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) SetActivationToken(ctx context.Context, id, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}
func (m *MockCustomerRepo) ActivateByToken(ctx context.Context, tokenHash string) (*domain.Customer, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	args := m.Called(ctx, id, tokenHash, expires)
	return args.Error(0)
}
func (m *MockCustomerRepo) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Customer, error) {
	args := m.Called(ctx, tokenHash, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockProviderRepo
type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) Create(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProviderRepo) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockProviderRepo) GetByEmail(ctx context.Context, email string) (*domain.Provider, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockProviderRepo) Update(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProviderRepo) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProviderRepo) SetActivationToken(ctx context.Context, id, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}
func (m *MockProviderRepo) ActivateByToken(ctx context.Context, tokenHash string) (*domain.Provider, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockProviderRepo) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	args := m.Called(ctx, id, tokenHash, expires)
	return args.Error(0)
}
func (m *MockProviderRepo) ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Provider, error) {
	args := m.Called(ctx, tokenHash, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockProviderRepo) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}
func (m *MockEquipmentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) ListByProvider(ctx context.Context, providerID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) CountByProvider(ctx context.Context, providerID string) (int32, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).(int32), args.Error(1)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, r *domain.RentalRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRequestRepo) Decide(ctx context.Context, id string, status domain.RequestStatus, message string, at time.Time) (*repository.DecisionOutcome, error) {
	args := m.Called(ctx, id, status, message, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DecisionOutcome), args.Error(1)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestRepo) ListApprovedWithAvailableEquipment(ctx context.Context) ([]domain.RentalRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendActivationEmail(ctx context.Context, email, name, userType, token string) error {
	args := m.Called(ctx, email, name, userType, token)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	args := m.Called(ctx, email, name, token)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestReceivedEmail(ctx context.Context, providerEmail, customerName, equipmentName string) error {
	args := m.Called(ctx, providerEmail, customerName, equipmentName)
	return args.Error(0)
}
func (m *MockEmailService) SendDecisionEmail(ctx context.Context, customerEmail, equipmentName string, status domain.RequestStatus, message string) error {
	args := m.Called(ctx, customerEmail, equipmentName, status, message)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(accountID, email, userType string) (string, error) {
	args := m.Called(accountID, email, userType)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateActivationToken(accountID, userType string) (string, error) {
	args := m.Called(accountID, userType)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateResetToken(accountID, userType string) (string, error) {
	args := m.Called(accountID, userType)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string, expected security.TokenType) (*security.AccountClaims, error) {
	args := m.Called(tokenString, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.AccountClaims), args.Error(1)
}
