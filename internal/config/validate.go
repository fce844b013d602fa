package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if c.Translate.APIKey != "" && c.Translate.Model == "" {
		return fmt.Errorf("translate.model must be set when translate.api_key is configured")
	}

	return nil
}

func (s *StudyConfig) validate() error {
	if s.StaleSessionRetentionDays <= 0 {
		return fmt.Errorf("stale_session_retention_days must be > 0 (got %d)", s.StaleSessionRetentionDays)
	}
	return nil
}
