package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-resume-api-tokens")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)

	assert.Equal(t, "a-signing-secret-for-resume-api-tokens", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-resume-api-tokens")
	t.Setenv("JWT_EXPIRATION_HOURS", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-signing-secret-for-resume-api-tokens")

	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "one day"},
		{"zero hours", "0"},
		{"negative hours", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_EXPIRATION_HOURS", tt.value)

			cfg, err := NewJWTConfig()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
