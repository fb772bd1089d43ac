package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidation(t *testing.T) {
	// Test valid configuration
	config := &Config{
		Server: ServerConfig{
			Port: "8000",
		},
		Database: DatabaseConfig{
			Path: "problems.db",
		},
		Moderation: ModerationConfig{
			APIKey:  "test-key",
			Model:   "mistral-large-latest",
			Timeout: 30 * time.Second,
		},
	}

	err := config.Validate()
	assert.NoError(t, err)

	// Test missing server port
	invalidConfig := &Config{
		Server: ServerConfig{
			Port: "",
		},
	}

	err = invalidConfig.Validate()
	assert.Error(t, err)
}

func TestConfigValidationMissingAPIKey(t *testing.T) {
	config := &Config{
		Server: ServerConfig{
			Port: "8000",
		},
		Database: DatabaseConfig{
			Path: "problems.db",
		},
		Moderation: ModerationConfig{
			Timeout: 30 * time.Second,
		},
	}

	err := config.Validate()
	assert.ErrorContains(t, err, "API key")
}

func TestConfigValidationBadTimeout(t *testing.T) {
	config := &Config{
		Server: ServerConfig{
			Port: "8000",
		},
		Database: DatabaseConfig{
			Path: "problems.db",
		},
		Moderation: ModerationConfig{
			APIKey:  "test-key",
			Timeout: 0,
		},
	}

	err := config.Validate()
	assert.ErrorContains(t, err, "timeout")
}
