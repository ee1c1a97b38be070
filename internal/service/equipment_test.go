package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/service"
)

func TestEquipmentService_CreateEquipment(t *testing.T) {
	ctx := context.Background()

	input := service.EquipmentInput{
		Name:     "John Deere 5050D",
		Category: domain.CategoryTractors,
		Type:     "Utility Tractor",
		Price:    1200,
		Address:  "Nashik, Maharashtra",
	}

	t.Run("Success", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		provRepo.On("GetByID", ctx, "p1").Return(&domain.Provider{ID: "p1"}, nil)
		eqRepo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		eq, err := svc.CreateEquipment(ctx, "p1", input)
		require.NoError(t, err)
		assert.Equal(t, "p1", eq.ProviderID)
		assert.True(t, eq.Available, "new listings start available")
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		provRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := svc.CreateEquipment(ctx, "ghost", input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Validation", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		for name, mutate := range map[string]func(*service.EquipmentInput){
			"empty name":     func(in *service.EquipmentInput) { in.Name = "" },
			"bad category":   func(in *service.EquipmentInput) { in.Category = "Spaceships" },
			"bad type":       func(in *service.EquipmentInput) { in.Type = "Rocket" },
			"negative price": func(in *service.EquipmentInput) { in.Price = -1 },
			"empty address":  func(in *service.EquipmentInput) { in.Address = " " },
		} {
			in := input
			mutate(&in)
			_, err := svc.CreateEquipment(ctx, "p1", in)
			assert.ErrorIs(t, err, service.ErrValidation, name)
		}
	})
}

func TestEquipmentService_Ownership(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Equipment{ID: "e1", ProviderID: "p1", Name: "Baler", Category: domain.CategoryHay, Type: "Baler", Price: 50, Address: "Pune", Available: true}

	t.Run("Owner Updates", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		eqRepo.On("GetByID", ctx, "e1").Return(owned, nil)
		eqRepo.On("Update", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		price := 75.0
		eq, err := svc.UpdateEquipment(ctx, "p1", "e1", domain.EquipmentUpdate{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 75.0, eq.Price)
	})

	t.Run("Stranger Cannot Update", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		eqRepo.On("GetByID", ctx, "e1").Return(owned, nil)

		price := 75.0
		_, err := svc.UpdateEquipment(ctx, "p2", "e1", domain.EquipmentUpdate{Price: &price})
		assert.ErrorIs(t, err, service.ErrForbidden)
		eqRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Stranger Cannot Delete", func(t *testing.T) {
		eqRepo := new(MockEquipmentRepo)
		provRepo := new(MockProviderRepo)
		svc := service.NewEquipmentService(eqRepo, provRepo)

		eqRepo.On("GetByID", ctx, "e1").Return(owned, nil)

		err := svc.DeleteEquipment(ctx, "p2", "e1")
		assert.ErrorIs(t, err, service.ErrForbidden)
		eqRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
