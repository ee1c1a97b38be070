package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess     TokenType = "access"
	TokenTypeActivation TokenType = "activation"
	TokenTypeReset      TokenType = "reset"
)

// AccountClaims are the claims carried by every token the platform issues.
// UserType distinguishes the customer and provider collections; the same
// token layout serves both.
type AccountClaims struct {
	AccountID string    `json:"account_id"`
	Email     string    `json:"email,omitempty"`
	UserType  string    `json:"userType"`
	Type      TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(accountID, email, userType string) (string, error)
	GenerateActivationToken(accountID, userType string) (string, error)
	GenerateResetToken(accountID, userType string) (string, error)
	ValidateToken(tokenString string, expected TokenType) (*AccountClaims, error)
}

type tokenManager struct {
	secret           []byte
	accessExpiry     time.Duration
	activationExpiry time.Duration
	resetExpiry      time.Duration
}

func NewTokenManager(secret string, accessMinutes, activationMinutes, resetMinutes int) TokenManager {
	return &tokenManager{
		secret:           []byte(secret),
		accessExpiry:     time.Duration(accessMinutes) * time.Minute,
		activationExpiry: time.Duration(activationMinutes) * time.Minute,
		resetExpiry:      time.Duration(resetMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(accountID, email, userType string) (string, error) {
	return m.sign(accountID, email, userType, TokenTypeAccess, m.accessExpiry, "api-access")
}

func (m *tokenManager) GenerateActivationToken(accountID, userType string) (string, error) {
	return m.sign(accountID, "", userType, TokenTypeActivation, m.activationExpiry, "account-activation")
}

func (m *tokenManager) GenerateResetToken(accountID, userType string) (string, error) {
	return m.sign(accountID, "", userType, TokenTypeReset, m.resetExpiry, "password-reset")
}

func (m *tokenManager) sign(accountID, email, userType string, typ TokenType, expiry time.Duration, audience string) (string, error) {
	claims := AccountClaims{
		AccountID: accountID,
		Email:     email,
		UserType:  userType,
		Type:      typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "agrirent",
			Audience:  jwt.ClaimStrings{audience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string, expected TokenType) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccountClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != expected {
		return nil, ErrWrongTokenType
	}
	if claims.AccountID == "" && claims.Subject != "" {
		claims.AccountID = claims.Subject
	}
	return claims, nil
}
