package domain

import "time"

type UserType string

const (
	UserTypeCustomer UserType = "user"
	UserTypeProvider UserType = "provider"
)

type Customer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	UserType        UserType   `json:"userType"`
	IsVerified      bool       `json:"isVerified"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	Rating          float64    `json:"rating"`
	ReviewCount     int32      `json:"reviewCount"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
