package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig governs account-password hashing. The optional pepper is a
// process-level secret appended before hashing, so a dump of the users table
// alone is not enough to attack the hashes offline.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and PASSWORD_PEPPER
// (optional). Cost is clamped to 10-14: below 10 is too cheap to brute-force
// resistance, above 14 makes login and registration unacceptably slow.
func NewPasswordConfig() (*PasswordConfig, error) {
	c := &PasswordConfig{
		BcryptCost: 12,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		c.BcryptCost = cost
	}

	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword returns the bcrypt hash of pw combined with the pepper.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash under the
// current pepper.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw))) == nil
}

func (c *PasswordConfig) peppered(pw string) string {
	return pw + c.Pepper
}
