package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 5000
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "agrirent"
	cfg.Database.Database = "agrirent_dev"
	cfg.Database.SSLMode = "disable"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Email.FromEmail = "noreply@agrirent.dev"
	return cfg
}

func TestConfig_ValidateDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 1440, cfg.JWT.ActivationTokenExpiry)
	assert.Equal(t, 10, cfg.JWT.ResetTokenExpiryMinutes)
	assert.Equal(t, 7, cfg.Rental.DefaultTermDays)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.ReconcileAvailability)
	assert.Equal(t, "0 30 2 * * *", cfg.Scheduler.PurgeExpiredTokens)
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db user", func(c *Config) { c.Database.User = "" }},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }},
		{"short jwt secret", func(c *Config) { c.JWT.Secret = "short" }},
		{"missing from email", func(c *Config) { c.Email.FromEmail = "" }},
		{"negative term days", func(c *Config) { c.Rental.DefaultTermDays = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_ConnectionString(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Password = "pw"
	assert.Equal(t, "postgres://agrirent:pw@localhost:5432/agrirent_dev?sslmode=disable", cfg.GetDatabaseConnectionString())
	assert.Equal(t, "localhost:5000", cfg.GetServerAddress())
}
