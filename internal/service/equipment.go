package service

import (
	"context"
	"strings"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	providerRepo  repository.ProviderRepository
}

func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	providerRepo repository.ProviderRepository,
) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, providerRepo: providerRepo}
}

func validateEquipmentInput(in EquipmentInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "" || len(in.Name) > 200:
		return validationErr("equipment name is required and cannot exceed 200 characters")
	case !domain.ValidEquipmentCategory(in.Category):
		return validationErr("unknown category %q", in.Category)
	case !domain.ValidEquipmentType(in.Type):
		return validationErr("unknown equipment type %q", in.Type)
	case in.Price < 0:
		return validationErr("price cannot be negative")
	case strings.TrimSpace(in.Address) == "" || len(in.Address) > 500:
		return validationErr("address is required and cannot exceed 500 characters")
	}
	return nil
}

func (s *equipmentService) CreateEquipment(ctx context.Context, providerID string, in EquipmentInput) (*domain.Equipment, error) {
	if err := validateEquipmentInput(in); err != nil {
		return nil, err
	}
	if _, err := s.providerRepo.GetByID(ctx, providerID); err != nil {
		return nil, err
	}

	eq := &domain.Equipment{
		ProviderID: providerID,
		Name:       in.Name,
		Category:   in.Category,
		Type:       in.Type,
		Price:      in.Price,
		Address:    in.Address,
		Available:  true,
	}
	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, callerID, id string, upd domain.EquipmentUpdate) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.ProviderID != callerID {
		return nil, ErrForbidden
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" || len(*upd.Name) > 200 {
			return nil, validationErr("equipment name is required and cannot exceed 200 characters")
		}
		eq.Name = *upd.Name
	}
	if upd.Category != nil {
		if !domain.ValidEquipmentCategory(*upd.Category) {
			return nil, validationErr("unknown category %q", *upd.Category)
		}
		eq.Category = *upd.Category
	}
	if upd.Type != nil {
		if !domain.ValidEquipmentType(*upd.Type) {
			return nil, validationErr("unknown equipment type %q", *upd.Type)
		}
		eq.Type = *upd.Type
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, validationErr("price cannot be negative")
		}
		eq.Price = *upd.Price
	}
	if upd.Address != nil {
		if strings.TrimSpace(*upd.Address) == "" || len(*upd.Address) > 500 {
			return nil, validationErr("address is required and cannot exceed 500 characters")
		}
		eq.Address = *upd.Address
	}
	if upd.Available != nil {
		eq.Available = *upd.Available
	}

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) ReplaceEquipment(ctx context.Context, callerID, id string, in EquipmentInput) (*domain.Equipment, error) {
	if err := validateEquipmentInput(in); err != nil {
		return nil, err
	}
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq.ProviderID != callerID {
		return nil, ErrForbidden
	}

	eq.Name = in.Name
	eq.Category = in.Category
	eq.Type = in.Type
	eq.Price = in.Price
	eq.Address = in.Address

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, callerID, id string) error {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if eq.ProviderID != callerID {
		return ErrForbidden
	}
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx)
}

func (s *equipmentService) ListProviderEquipment(ctx context.Context, providerID string) ([]domain.Equipment, error) {
	return s.equipmentRepo.ListByProvider(ctx, providerID)
}
