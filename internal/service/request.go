package service

import (
	"context"
	"log/slog"
	"time"

	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/logger"
	"agrirent-backend/internal/repository"
	"agrirent-backend/internal/utils"
)

// Default provider responses, used when a decision carries no message.
const (
	approvedMessage = "Your request has been approved. Equipment will be delivered as scheduled."
	rejectedMessage = "Your request has been rejected. Please try another equipment or contact the provider."
)

type requestService struct {
	requestRepo   repository.RequestRepository
	equipmentRepo repository.EquipmentRepository
	customerRepo  repository.CustomerRepository
	emailSvc      EmailService
	providerRepo  repository.ProviderRepository
	termDays      int
	log           *slog.Logger
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	equipmentRepo repository.EquipmentRepository,
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderRepository,
	emailSvc EmailService,
	termDays int,
) RequestService {
	if termDays <= 0 {
		termDays = 7
	}
	return &requestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		customerRepo:  customerRepo,
		providerRepo:  providerRepo,
		emailSvc:      emailSvc,
		termDays:      termDays,
		log:           logger.WithService("request-service"),
	}
}

func (s *requestService) CreateRequest(ctx context.Context, customerID string, in CreateRequestInput) (*domain.RentalRequest, error) {
	if in.EquipmentID == "" {
		return nil, validationErr("equipmentId is required")
	}
	if in.Urgency != "" && !domain.ValidUrgency(in.Urgency) {
		return nil, validationErr("unknown urgency %q", in.Urgency)
	}
	if len(in.SpecialRequirements) > 1000 {
		return nil, validationErr("special requirements cannot exceed 1000 characters")
	}
	if len(in.Message) > 1000 {
		return nil, validationErr("message cannot exceed 1000 characters")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepo.GetByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !eq.Available {
		return nil, ErrEquipmentUnavailable
	}
	if eq.ProviderID == "" {
		return nil, validationErr("equipment has no provider and cannot be requested")
	}

	terms, err := s.buildTerms(in, eq.Price)
	if err != nil {
		return nil, err
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}

	rr := &domain.RentalRequest{
		CustomerID:  domain.Ref(customer.ID),
		ProviderID:  domain.Ref(eq.ProviderID),
		EquipmentID: eq.ID,

		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		CustomerMobile: customer.Phone,
		EquipmentName:  eq.Name,

		Status:      domain.RequestStatusPending,
		RequestedAt: time.Now().UTC(),

		StartDate:           terms.StartDate,
		EndDate:             terms.EndDate,
		TotalDays:           terms.TotalDays,
		PricePerDay:         terms.PricePerDay,
		TotalAmount:         terms.TotalAmount,
		Urgency:             urgency,
		DeliveryRequired:    in.DeliveryRequired,
		OperatorRequired:    in.OperatorRequired,
		SpecialRequirements: in.SpecialRequirements,
		Message:             in.Message,
	}

	if err := s.requestRepo.Create(ctx, rr); err != nil {
		return nil, err
	}

	if provider, err := s.providerRepo.GetByID(ctx, eq.ProviderID); err == nil {
		if err := s.emailSvc.SendRequestReceivedEmail(ctx, provider.Email, customer.Name, eq.Name); err != nil {
			s.log.Warn("failed to notify provider of new request",
				"requestID", rr.ID, "providerID", eq.ProviderID, "error", err)
		}
	}

	return rr, nil
}

// buildTerms derives the rental window. An explicit start/end pair wins;
// otherwise the default window starts today.
func (s *requestService) buildTerms(in CreateRequestInput, pricePerDay float64) (utils.RentalTerms, error) {
	if in.StartDate != "" && in.EndDate != "" {
		return utils.TermsForWindow(in.StartDate, in.EndDate, pricePerDay)
	}
	start := time.Now().UTC()
	if in.StartDate != "" {
		parsed, err := utils.ParseDate(in.StartDate)
		if err != nil {
			return utils.RentalTerms{}, err
		}
		start = parsed
	}
	return utils.DefaultTerms(start, s.termDays, pricePerDay), nil
}

func (s *requestService) GetRequest(ctx context.Context, callerID string, id string) (*domain.RentalRequest, error) {
	rr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rr.CustomerID.Matches(callerID) && !rr.ProviderID.Matches(callerID) {
		return nil, ErrForbidden
	}
	return rr, nil
}

func (s *requestService) ListForCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error) {
	return s.requestRepo.ListByCustomer(ctx, customerID)
}

func (s *requestService) ListForProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error) {
	return s.requestRepo.ListByProvider(ctx, providerID)
}

func (s *requestService) Decide(ctx context.Context, providerID, requestID string, decision domain.RequestStatus, message string) (*DecisionResult, error) {
	if !domain.ValidDecision(decision) {
		return nil, validationErr("decision must be approved or rejected")
	}

	rr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !rr.ProviderID.Matches(providerID) {
		return nil, ErrForbidden
	}

	if message == "" {
		if decision == domain.RequestStatusApproved {
			message = approvedMessage
		} else {
			message = rejectedMessage
		}
	}

	outcome, err := s.requestRepo.Decide(ctx, requestID, decision, message, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !outcome.EquipmentSynced {
		s.log.Warn("equipment availability not updated with decision",
			"requestID", requestID, "equipmentID", outcome.Request.EquipmentID, "decision", decision)
	}

	if err := s.emailSvc.SendDecisionEmail(ctx, outcome.Request.CustomerEmail, outcome.Request.EquipmentName, decision, message); err != nil {
		s.log.Warn("failed to notify customer of decision",
			"requestID", requestID, "decision", decision, "error", err)
	}

	return &DecisionResult{Request: outcome.Request, EquipmentSynced: outcome.EquipmentSynced}, nil
}

func (s *requestService) DeleteRequest(ctx context.Context, customerID, requestID string) error {
	rr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if !rr.CustomerID.Matches(customerID) {
		return ErrForbidden
	}
	// Deleting a request never touches equipment availability.
	return s.requestRepo.Delete(ctx, requestID)
}
