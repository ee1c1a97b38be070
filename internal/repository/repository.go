package repository

import (
	"context"
	"time"

	"agrirent-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	UpdateLastLogin(ctx context.Context, id string) error

	SetActivationToken(ctx context.Context, id, tokenHash string) error
	ActivateByToken(ctx context.Context, tokenHash string) (*domain.Customer, error)
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Customer, error)
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetByEmail(ctx context.Context, email string) (*domain.Provider, error)
	Update(ctx context.Context, p *domain.Provider) error
	UpdateLastLogin(ctx context.Context, id string) error

	SetActivationToken(ctx context.Context, id, tokenHash string) error
	ActivateByToken(ctx context.Context, tokenHash string) (*domain.Provider, error)
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ConsumeResetToken(ctx context.Context, tokenHash, passwordHash string) (*domain.Provider, error)
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	// Update replaces every mutable field; ProviderID is never written.
	Update(ctx context.Context, e *domain.Equipment) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByProvider(ctx context.Context, providerID string) ([]domain.Equipment, error)
	CountByProvider(ctx context.Context, providerID string) (int32, error)
}

// DecisionOutcome reports how far the approve/reject write got. The request
// status update and the equipment availability flip run in one transaction;
// EquipmentSynced is false only when the referenced equipment row no longer
// exists, which is tolerated rather than fatal.
type DecisionOutcome struct {
	Request         *domain.RentalRequest
	EquipmentSynced bool
}

type RequestRepository interface {
	Create(ctx context.Context, r *domain.RentalRequest) error
	GetByID(ctx context.Context, id string) (*domain.RentalRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error)
	ListByProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error)
	// Decide transitions a pending request to approved or rejected and flips
	// the referenced equipment's availability in the same transaction.
	// Returns domain.ErrNotFound for an unknown request and
	// domain.ErrRequestNotPending when the stored status is already terminal.
	Decide(ctx context.Context, id string, status domain.RequestStatus, message string, at time.Time) (*DecisionOutcome, error)
	Delete(ctx context.Context, id string) error
	// ListApprovedWithAvailableEquipment finds approved requests whose
	// equipment is still flagged available, for the reconciliation sweep.
	ListApprovedWithAvailableEquipment(ctx context.Context) ([]domain.RentalRequest, error)
}
