package service

import (
	"context"
	"errors"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/repository"
)

type accountService struct {
	customerRepo  repository.CustomerRepository
	providerRepo  repository.ProviderRepository
	equipmentRepo repository.EquipmentRepository
}

func NewAccountService(
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderRepository,
	equipmentRepo repository.EquipmentRepository,
) AccountService {
	return &accountService{
		customerRepo:  customerRepo,
		providerRepo:  providerRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *accountService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *accountService) UpdateCustomer(ctx context.Context, id string, upd AccountUpdate) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" || len(*upd.Name) > 100 {
			return nil, validationErr("name is required and cannot exceed 100 characters")
		}
		customer.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != customer.Email {
		if !emailPattern.MatchString(*upd.Email) {
			return nil, validationErr("please enter a valid email")
		}
		if _, err := s.customerRepo.GetByEmail(ctx, *upd.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		customer.Email = *upd.Email
	}
	if upd.Phone != nil {
		if !phonePattern.MatchString(*upd.Phone) {
			return nil, validationErr("please enter a valid 10-digit phone number")
		}
		customer.Phone = *upd.Phone
	}
	if upd.Address != nil {
		if *upd.Address == "" || len(*upd.Address) > 500 {
			return nil, validationErr("address is required and cannot exceed 500 characters")
		}
		customer.Address = *upd.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *accountService) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// totalEquipment is derived, not stored authoritatively; refresh it on
	// read so the profile stays truthful after catalog changes.
	if count, err := s.equipmentRepo.CountByProvider(ctx, id); err == nil {
		provider.TotalEquipment = count
	}
	return provider, nil
}

func (s *accountService) UpdateProvider(ctx context.Context, id string, upd AccountUpdate) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" || len(*upd.Name) > 100 {
			return nil, validationErr("name is required and cannot exceed 100 characters")
		}
		provider.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != provider.Email {
		if !emailPattern.MatchString(*upd.Email) {
			return nil, validationErr("please enter a valid email")
		}
		if _, err := s.providerRepo.GetByEmail(ctx, *upd.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		provider.Email = *upd.Email
	}
	if upd.Phone != nil {
		if !phonePattern.MatchString(*upd.Phone) {
			return nil, validationErr("please enter a valid 10-digit phone number")
		}
		provider.Phone = *upd.Phone
	}
	if upd.Address != nil {
		if *upd.Address == "" || len(*upd.Address) > 500 {
			return nil, validationErr("address is required and cannot exceed 500 characters")
		}
		provider.Address = *upd.Address
	}
	if upd.BusinessName != nil {
		if len(*upd.BusinessName) > 200 {
			return nil, validationErr("business name cannot exceed 200 characters")
		}
		provider.BusinessName = *upd.BusinessName
	}
	if upd.BusinessType != nil {
		if !domain.ValidBusinessType(*upd.BusinessType) {
			return nil, validationErr("unknown business type %q", *upd.BusinessType)
		}
		provider.BusinessType = *upd.BusinessType
	}
	if upd.LicenseNumber != nil {
		if len(*upd.LicenseNumber) > 50 {
			return nil, validationErr("license number cannot exceed 50 characters")
		}
		provider.LicenseNumber = *upd.LicenseNumber
	}
	if upd.ServiceArea != nil {
		if len(*upd.ServiceArea) > 300 {
			return nil, validationErr("service area cannot exceed 300 characters")
		}
		provider.ServiceArea = *upd.ServiceArea
	}
	if upd.Experience != nil {
		if *upd.Experience < 0 || *upd.Experience > 100 {
			return nil, validationErr("experience must be between 0 and 100 years")
		}
		provider.Experience = *upd.Experience
	}
	if upd.Certifications != nil {
		if len(*upd.Certifications) > 1000 {
			return nil, validationErr("certifications cannot exceed 1000 characters")
		}
		provider.Certifications = *upd.Certifications
	}

	if err := s.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}
