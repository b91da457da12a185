package config

import (
	"fmt"
	"time"
)

// AdminConfig holds admin API authentication configuration.
type AdminConfig struct {
	// Token is the shared secret exchanged for a JWT at /admin/login.
	Token string
	// JWTSecret signs issued admin tokens.
	JWTSecret string
	// TokenTTL is the lifetime of an issued admin JWT.
	TokenTTL time.Duration
}

// LoadAdminConfigFromEnv loads admin configuration from environment variables.
func LoadAdminConfigFromEnv() AdminConfig {
	return AdminConfig{
		Token:     GetEnv("ADMIN_TOKEN", ""),
		JWTSecret: GetEnv("ADMIN_JWT_SECRET", ""),
		TokenTTL:  GetEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
	}
}

// Validate validates admin configuration.
func (c AdminConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("ADMIN_TOKEN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be greater than 0")
	}
	return nil
}
