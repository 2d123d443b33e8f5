package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"user_id": "550e8400-e29b-41d4-a716-446655440000",
		"job_url": "https://boards.greenhouse.io/acme/jobs/4001",
		"resume": "resume.md",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.UserID)
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/4001", cfg.JobURL)
	assert.Equal(t, "resume.md", cfg.Resume)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	badJSON := writeConfigFile(t, `{ invalid json }`)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"malformed JSON", badJSON, "failed to parse config JSON"},
		{"missing file", "/nonexistent/path/config.json", "failed to read config file"},
		{"empty path", "", "config path is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_JobSourceIsExclusive(t *testing.T) {
	cfg := &Config{
		Job:    "posting.txt",
		JobURL: "https://boards.greenhouse.io/acme/jobs/4001",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.md"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		UserID: "550e8400-e29b-41d4-a716-446655440000",
		JobURL: "https://boards.greenhouse.io/acme/jobs/4001",
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:      "default-resume.md",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/matcher",
	}
	partial := Config{
		Resume: "custom-resume.md",
		UserID: "custom-user-id",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Set fields win, defaults fill the rest.
	assert.Equal(t, "custom-resume.md", merged.Resume)
	assert.Equal(t, "custom-user-id", merged.UserID)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Resume: "resume.md", UserID: "test-user"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "resume.md", merged.Resume)
	assert.Equal(t, "test-user", merged.UserID)
}
