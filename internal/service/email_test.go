package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetEmailContentStatesConfiguredValidity(t *testing.T) {
	svc := &sendGridEmailService{baseURL: "https://agrirent.dev", resetExpiryMinutes: 10}

	_, plain, html := svc.resetEmailContent("Ravi", "tok123")
	assert.Contains(t, plain, "https://agrirent.dev/reset-password/tok123")
	assert.Contains(t, plain, "valid for 10 minutes")
	assert.Contains(t, html, "valid for 10 minutes")
}

func TestResetValidity(t *testing.T) {
	assert.Equal(t, "10 minutes", resetValidity(10))
	assert.Equal(t, "90 minutes", resetValidity(90))
	assert.Equal(t, "1 hour", resetValidity(60))
	assert.Equal(t, "24 hours", resetValidity(1440))
}
