package domain

import "time"

type BusinessType string

const (
	BusinessTypeEquipmentRental BusinessType = "Equipment Rental"
	BusinessTypeFarmServices    BusinessType = "Farm Services"
	BusinessTypeContractor      BusinessType = "Agricultural Contractor"
	BusinessTypeDealer          BusinessType = "Equipment Dealer"
	BusinessTypeOther           BusinessType = "Other"
)

var businessTypes = map[BusinessType]bool{
	BusinessTypeEquipmentRental: true,
	BusinessTypeFarmServices:    true,
	BusinessTypeContractor:      true,
	BusinessTypeDealer:          true,
	BusinessTypeOther:           true,
}

// ValidBusinessType reports whether t is one of the known business types.
// An empty value is allowed; the field is optional.
func ValidBusinessType(t BusinessType) bool {
	return t == "" || businessTypes[t]
}

type Provider struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"`
	Phone           string       `json:"phone"`
	Address         string       `json:"address"`
	UserType        UserType     `json:"userType"`
	BusinessName    string       `json:"businessName,omitempty"`
	BusinessType    BusinessType `json:"businessType,omitempty"`
	LicenseNumber   string       `json:"licenseNumber,omitempty"`
	ServiceArea     string       `json:"serviceArea,omitempty"`
	Experience      int32        `json:"experience"`
	Certifications  string       `json:"certifications,omitempty"`
	IsActive        bool         `json:"isActive"`
	IsVerified      bool         `json:"isVerified"`
	IsEmailVerified bool         `json:"isEmailVerified"`
	TotalEquipment  int32        `json:"totalEquipment"`
	TotalRentals    int32        `json:"totalRentals"`
	Rating          float64      `json:"rating"`
	ReviewCount     int32        `json:"reviewCount"`
	LastLogin       *time.Time   `json:"lastLogin,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// PublicProfile strips contact and credential fields for display to customers.
func (p *Provider) PublicProfile() map[string]any {
	return map[string]any{
		"id":             p.ID,
		"name":           p.Name,
		"businessName":   p.BusinessName,
		"businessType":   p.BusinessType,
		"serviceArea":    p.ServiceArea,
		"experience":     p.Experience,
		"rating":         p.Rating,
		"reviewCount":    p.ReviewCount,
		"totalEquipment": p.TotalEquipment,
		"joinedAt":       p.CreatedAt,
	}
}
