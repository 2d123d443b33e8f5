package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig controls signing and lifetime of the API's bearer tokens.
// Tokens authorize access to a user's resumes and analyses, so the secret
// must come from the environment and is never defaulted.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS
// (default 24, long enough to cover a job-search session without
// re-login).
func NewJWTConfig() (*JWTConfig, error) {
	c := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: 24,
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		c.ExpirationHours = hours
	}

	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
