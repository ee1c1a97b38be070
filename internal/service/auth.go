package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/logger"
	"agrirent-backend/internal/repository"
	"agrirent-backend/internal/security"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

type authService struct {
	customerRepo repository.CustomerRepository
	providerRepo repository.ProviderRepository
	tokens       security.TokenManager
	emailSvc     EmailService
	resetExpiry  time.Duration
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderRepository,
	tokens security.TokenManager,
	emailSvc EmailService,
	resetExpiryMinutes int,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		providerRepo: providerRepo,
		tokens:       tokens,
		emailSvc:     emailSvc,
		resetExpiry:  time.Duration(resetExpiryMinutes) * time.Minute,
	}
}

func validateSignup(in SignupInput) error {
	switch {
	case in.Name == "" || len(in.Name) > 100:
		return validationErr("name is required and cannot exceed 100 characters")
	case !emailPattern.MatchString(in.Email):
		return validationErr("please enter a valid email")
	case len(in.Password) < 6:
		return validationErr("password must be at least 6 characters")
	case !phonePattern.MatchString(in.Phone):
		return validationErr("please enter a valid 10-digit phone number")
	case in.Address == "" || len(in.Address) > 500:
		return validationErr("address is required and cannot exceed 500 characters")
	}
	return nil
}

func (s *authService) SignupCustomer(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	if err := validateSignup(in); err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.sendActivation(ctx, customer.ID, customer.Email, customer.Name, domain.UserTypeCustomer, s.customerRepo.SetActivationToken)
	return customer, nil
}

func (s *authService) SignupProvider(ctx context.Context, in SignupInput) (*domain.Provider, error) {
	if err := validateSignup(in); err != nil {
		return nil, err
	}
	if !domain.ValidBusinessType(in.BusinessType) {
		return nil, validationErr("unknown business type %q", in.BusinessType)
	}
	if len(in.BusinessName) > 200 {
		return nil, validationErr("business name cannot exceed 200 characters")
	}
	if len(in.LicenseNumber) > 50 {
		return nil, validationErr("license number cannot exceed 50 characters")
	}
	if _, err := s.providerRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	businessType := in.BusinessType
	if businessType == "" {
		businessType = domain.BusinessTypeEquipmentRental
	}

	provider := &domain.Provider{
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  hash,
		Phone:         in.Phone,
		Address:       in.Address,
		BusinessName:  in.BusinessName,
		BusinessType:  businessType,
		LicenseNumber: in.LicenseNumber,
		IsActive:      true,
	}
	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}

	s.sendActivation(ctx, provider.ID, provider.Email, provider.Name, domain.UserTypeProvider, s.providerRepo.SetActivationToken)
	return provider, nil
}

// sendActivation issues an activation token and emails the link. Email
// delivery failures are logged, not returned: the account exists either way
// and the user can request a fresh link.
func (s *authService) sendActivation(ctx context.Context, id, email, name string, userType domain.UserType, store func(context.Context, string, string) error) {
	token, err := s.tokens.GenerateActivationToken(id, string(userType))
	if err != nil {
		logger.Error("failed to generate activation token", "account_id", id, "error", err)
		return
	}
	if err := store(ctx, id, security.HashToken(token)); err != nil {
		logger.Error("failed to store activation token", "account_id", id, "error", err)
		return
	}
	if err := s.emailSvc.SendActivationEmail(ctx, email, name, string(userType), token); err != nil {
		logger.Error("failed to send activation email", "account_id", id, "error", err)
	}
}

func (s *authService) SigninCustomer(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(customer.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(customer.ID, customer.Email, string(domain.UserTypeCustomer))
	if err != nil {
		return "", nil, err
	}
	if err := s.customerRepo.UpdateLastLogin(ctx, customer.ID); err != nil {
		logger.Warn("failed to record last login", "customer_id", customer.ID, "error", err)
	}
	return token, customer, nil
}

func (s *authService) SigninProvider(ctx context.Context, email, password string) (string, *domain.Provider, error) {
	provider, err := s.providerRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(provider.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(provider.ID, provider.Email, string(domain.UserTypeProvider))
	if err != nil {
		return "", nil, err
	}
	if err := s.providerRepo.UpdateLastLogin(ctx, provider.ID); err != nil {
		logger.Warn("failed to record last login", "provider_id", provider.ID, "error", err)
	}
	return token, provider, nil
}

func (s *authService) Activate(ctx context.Context, token string) (domain.UserType, string, error) {
	claims, err := s.tokens.ValidateToken(token, security.TokenTypeActivation)
	if err != nil {
		return "", "", err
	}

	hash := security.HashToken(token)
	switch domain.UserType(claims.UserType) {
	case domain.UserTypeCustomer:
		customer, err := s.customerRepo.ActivateByToken(ctx, hash)
		if err != nil {
			return "", "", err
		}
		return domain.UserTypeCustomer, customer.Name, nil
	case domain.UserTypeProvider:
		provider, err := s.providerRepo.ActivateByToken(ctx, hash)
		if err != nil {
			return "", "", err
		}
		return domain.UserTypeProvider, provider.Name, nil
	default:
		return "", "", security.ErrInvalidToken
	}
}

// ForgotPassword responds identically whether or not the account exists so
// the endpoint cannot be used to enumerate registered emails.
func (s *authService) ForgotPassword(ctx context.Context, email string, userType domain.UserType) error {
	var (
		accountID string
		name      string
	)
	switch userType {
	case domain.UserTypeCustomer:
		customer, err := s.customerRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		accountID, name = customer.ID, customer.Name
	case domain.UserTypeProvider:
		provider, err := s.providerRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		accountID, name = provider.ID, provider.Name
	default:
		return validationErr("unknown user type %q", userType)
	}

	token, err := s.tokens.GenerateResetToken(accountID, string(userType))
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.resetExpiry)
	hash := security.HashToken(token)
	if userType == domain.UserTypeCustomer {
		err = s.customerRepo.SetResetToken(ctx, accountID, hash, expires)
	} else {
		err = s.providerRepo.SetResetToken(ctx, accountID, hash, expires)
	}
	if err != nil {
		return err
	}

	if err := s.emailSvc.SendPasswordResetEmail(ctx, email, name, token); err != nil {
		// Still report success to the caller; the uniform response rule
		// outranks the delivery failure here.
		logger.Error("failed to send password reset email", "account_id", accountID, "error", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (domain.UserType, error) {
	if len(newPassword) < 6 {
		return "", validationErr("password must be at least 6 characters")
	}
	claims, err := s.tokens.ValidateToken(token, security.TokenTypeReset)
	if err != nil {
		return "", err
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	tokenHash := security.HashToken(token)
	switch domain.UserType(claims.UserType) {
	case domain.UserTypeCustomer:
		if _, err := s.customerRepo.ConsumeResetToken(ctx, tokenHash, hash); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", security.ErrExpiredToken
			}
			return "", err
		}
		return domain.UserTypeCustomer, nil
	case domain.UserTypeProvider:
		if _, err := s.providerRepo.ConsumeResetToken(ctx, tokenHash, hash); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", security.ErrExpiredToken
			}
			return "", err
		}
		return domain.UserTypeProvider, nil
	default:
		return "", security.ErrInvalidToken
	}
}

func (s *authService) VerifyPassword(ctx context.Context, userType domain.UserType, accountID, password string) (bool, error) {
	var storedHash string
	switch userType {
	case domain.UserTypeCustomer:
		customer, err := s.customerRepo.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		storedHash = customer.PasswordHash
	case domain.UserTypeProvider:
		provider, err := s.providerRepo.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		storedHash = provider.PasswordHash
	default:
		return false, validationErr("unknown user type %q", userType)
	}
	return security.CheckPassword(storedHash, password), nil
}
