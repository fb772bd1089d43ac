package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Admin      AdminConfig      `mapstructure:"admin"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds the SQLite database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ModerationConfig holds the external moderation service configuration
type ModerationConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AdminConfig holds access control for the administrative endpoints
type AdminConfig struct {
	Token string `mapstructure:"token"`
}

// LoadConfig loads configuration from environment variables and config file
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	viper.AutomaticEnv()
	bindEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")

	viper.SetDefault("database.path", "problems.db")

	viper.SetDefault("moderation.model", "mistral-large-latest")
	viper.SetDefault("moderation.base_url", "https://api.mistral.ai")
	viper.SetDefault("moderation.timeout", "30s")
}

// bindEnvVars binds environment variables to configuration keys
func bindEnvVars() {
	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Database
	viper.BindEnv("database.path", "DB_PATH")

	// Moderation
	viper.BindEnv("moderation.api_key", "MISTRAL_API_KEY")
	viper.BindEnv("moderation.model", "MISTRAL_MODEL")
	viper.BindEnv("moderation.base_url", "MODERATION_BASE_URL")
	viper.BindEnv("moderation.timeout", "MODERATION_TIMEOUT")

	// Admin
	viper.BindEnv("admin.token", "ADMIN_TOKEN")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Moderation.APIKey == "" {
		return fmt.Errorf("moderation API key is required")
	}

	if c.Moderation.Timeout <= 0 {
		return fmt.Errorf("moderation timeout must be greater than 0")
	}

	return nil
}
