package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func ValidDecision(s RequestStatus) bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
	UrgencyUrgent Urgency = "Urgent"
)

var urgencies = map[Urgency]bool{
	UrgencyLow:    true,
	UrgencyMedium: true,
	UrgencyHigh:   true,
	UrgencyUrgent: true,
}

func ValidUrgency(u Urgency) bool {
	return urgencies[u]
}

// RentalRequest links a customer, a provider and an equipment item.
// Customer and equipment fields are snapshotted at creation time so later
// profile or listing edits do not alter historical requests.
type RentalRequest struct {
	ID         string `json:"id"`
	CustomerID Ref    `json:"customerId"`
	ProviderID Ref    `json:"providerId"`
	EquipmentID string `json:"equipmentId"`

	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerMobile string `json:"customerMobile"`
	EquipmentName  string `json:"equipmentName"`

	Status          RequestStatus `json:"status"`
	RequestedAt     time.Time     `json:"requestedAt"`
	ResponseDate    *time.Time    `json:"responseDate,omitempty"`
	ResponseMessage string        `json:"responseMessage,omitempty"`

	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	TotalDays           int32   `json:"totalDays"`
	PricePerDay         float64 `json:"pricePerDay"`
	TotalAmount         float64 `json:"totalAmount"`
	Urgency             Urgency `json:"urgency"`
	DeliveryRequired    bool    `json:"deliveryRequired"`
	OperatorRequired    bool    `json:"operatorRequired"`
	SpecialRequirements string  `json:"specialRequirements,omitempty"`
	Message             string  `json:"message"`
}
