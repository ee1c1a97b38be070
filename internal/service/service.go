package service

import (
	"context"

	"agrirent-backend/internal/domain"
)

// SignupInput carries the fields accepted by both signup endpoints; the
// business fields are read only for provider signups.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	BusinessName  string              `json:"businessName"`
	BusinessType  domain.BusinessType `json:"businessType"`
	LicenseNumber string              `json:"licenseNumber"`
}

type AuthService interface {
	SignupCustomer(ctx context.Context, in SignupInput) (*domain.Customer, error)
	SignupProvider(ctx context.Context, in SignupInput) (*domain.Provider, error)
	SigninCustomer(ctx context.Context, email, password string) (string, *domain.Customer, error)
	SigninProvider(ctx context.Context, email, password string) (string, *domain.Provider, error)
	// Activate consumes an activation token and returns the activated
	// account's user type and name, for the confirmation page.
	Activate(ctx context.Context, token string) (domain.UserType, string, error)
	// ForgotPassword never reveals whether the account exists; a nil error
	// only means the request was accepted.
	ForgotPassword(ctx context.Context, email string, userType domain.UserType) error
	ResetPassword(ctx context.Context, token, newPassword string) (domain.UserType, error)
	// VerifyPassword re-checks the caller's current password before a
	// profile edit. Unknown accounts report false, not an error.
	VerifyPassword(ctx context.Context, userType domain.UserType, accountID, password string) (bool, error)
}

// AccountUpdate is a partial profile update; nil fields stay untouched.
type AccountUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`

	BusinessName   *string              `json:"businessName,omitempty"`
	BusinessType   *domain.BusinessType `json:"businessType,omitempty"`
	LicenseNumber  *string              `json:"licenseNumber,omitempty"`
	ServiceArea    *string              `json:"serviceArea,omitempty"`
	Experience     *int32               `json:"experience,omitempty"`
	Certifications *string              `json:"certifications,omitempty"`
}

type AccountService interface {
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, upd AccountUpdate) (*domain.Customer, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
	UpdateProvider(ctx context.Context, id string, upd AccountUpdate) (*domain.Provider, error)
}

type EquipmentInput struct {
	Name     string                   `json:"name"`
	Category domain.EquipmentCategory `json:"category"`
	Type     string                   `json:"type"`
	Price    float64                  `json:"price"`
	Address  string                   `json:"address"`
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, providerID string, in EquipmentInput) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, callerID, id string, upd domain.EquipmentUpdate) (*domain.Equipment, error)
	ReplaceEquipment(ctx context.Context, callerID, id string, in EquipmentInput) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, callerID, id string) error
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
	ListProviderEquipment(ctx context.Context, providerID string) ([]domain.Equipment, error)
}

// CreateRequestInput is the customer-supplied part of a rental request.
// Everything else (snapshots, terms, status) is derived server-side.
type CreateRequestInput struct {
	EquipmentID         string         `json:"equipmentId"`
	StartDate           string         `json:"startDate,omitempty"`
	EndDate             string         `json:"endDate,omitempty"`
	Urgency             domain.Urgency `json:"urgency,omitempty"`
	DeliveryRequired    bool           `json:"deliveryRequired"`
	OperatorRequired    bool           `json:"operatorRequired"`
	SpecialRequirements string         `json:"specialRequirements,omitempty"`
	Message             string         `json:"message,omitempty"`
}

// DecisionResult reports a decision together with whether the equipment
// availability flip landed. EquipmentSynced false is degraded success, not
// failure: the status transition is already committed.
type DecisionResult struct {
	Request         *domain.RentalRequest
	EquipmentSynced bool
}

type RequestService interface {
	CreateRequest(ctx context.Context, customerID string, in CreateRequestInput) (*domain.RentalRequest, error)
	GetRequest(ctx context.Context, callerID string, id string) (*domain.RentalRequest, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error)
	ListForProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error)
	Decide(ctx context.Context, providerID, requestID string, decision domain.RequestStatus, message string) (*DecisionResult, error)
	DeleteRequest(ctx context.Context, customerID, requestID string) error
}

type EmailService interface {
	SendActivationEmail(ctx context.Context, email, name, userType, token string) error
	SendPasswordResetEmail(ctx context.Context, email, name, token string) error
	SendRequestReceivedEmail(ctx context.Context, providerEmail, customerName, equipmentName string) error
	SendDecisionEmail(ctx context.Context, customerEmail, equipmentName string, status domain.RequestStatus, message string) error
}
