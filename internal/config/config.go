package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = 5000
	DefaultAllowedOrigins = "*"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// Config holds all configuration for the application
type Config struct {
	APIKey         string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	APIEndpoint    string `yaml:"api_endpoint" env:"YOUTUBE_API_ENDPOINT"`
	Host           string `yaml:"host" env:"HOST"`
	Port           int    `yaml:"port" env:"PORT"`
	AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat      string `yaml:"log_format" env:"LOG_FORMAT"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		AllowedOrigins: DefaultAllowedOrigins,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}

// NewConfig loads configuration with the following priority:
// Environment variables > .env file > Config file > defaults
func NewConfig() (*Config, error) {
	config := Default()

	// Config file is optional; env-only deployments are common
	if err := loadConfigFile(config); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// .env never overrides variables already set in the process environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Apply environment variables (can override config file)
	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return config, nil
}

// Validate checks the values needed to talk to the YouTube Data API
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or run 'ytchannel config init')")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d (expected 1-65535)", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOriginList splits AllowedOrigins on commas
func (c *Config) AllowedOriginList() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return []string{DefaultAllowedOrigins}
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// MaskedAPIKey returns the first four characters of the API key for display
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "NOT FOUND"
	}
	if len(c.APIKey) <= 4 {
		return c.APIKey + "..."
	}
	return c.APIKey[:4] + "..."
}

// InitConfig creates a new configuration file with the given API key
func InitConfig(apiKey string) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if apiKey == "" {
		apiKey = "your-youtube-data-api-key"
	}

	// Prepare YAML content with comments
	yamlContent := fmt.Sprintf(`# yt-channel configuration file
# Every value can be overridden by its environment variable
# (YOUTUBE_API_KEY, PORT, HOST, ALLOWED_ORIGINS, LOG_LEVEL, LOG_FORMAT).

api_key: "%s"
port: %d
allowed_origins: "%s"
log_level: "%s"
log_format: "%s"
`, apiKey, DefaultPort, DefaultAllowedOrigins, DefaultLogLevel, DefaultLogFormat)

	if err := os.WriteFile(configPath, []byte(yamlContent), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	return getConfigFilePath()
}

// getConfigDir returns the configuration directory path (~/.yt-channel)
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".yt-channel"), nil
}

// getConfigFilePath returns the full path to the config file
func getConfigFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// loadConfigFile loads configuration from ~/.yt-channel/config.yaml
func loadConfigFile(config *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
