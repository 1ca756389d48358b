package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at fresh temp dirs so
// neither a real config file nor a stray .env leaks into the test
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{"YOUTUBE_API_KEY", "YOUTUBE_API_ENDPOINT", "HOST", "PORT", "ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	configDir := filepath.Join(home, ".yt-channel")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0644))
}

func TestNewConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, config.Port)
	assert.Equal(t, DefaultAllowedOrigins, config.AllowedOrigins)
	assert.Equal(t, DefaultLogLevel, config.LogLevel)
	assert.Empty(t, config.APIKey)
}

func TestNewConfig_ConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, `api_key: "file-key"
port: 8080
log_format: "json"`)

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "file-key", config.APIKey)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "json", config.LogFormat)
	// Unset keys keep their defaults
	assert.Equal(t, DefaultLogLevel, config.LogLevel)
}

func TestNewConfig_EnvironmentOverride(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, `api_key: "file-key"
port: 8080`)

	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("PORT", "9090")

	config, err := NewConfig()
	require.NoError(t, err)

	// Environment variable should override config file
	assert.Equal(t, "env-key", config.APIKey)
	assert.Equal(t, 9090, config.Port)
}

func TestNewConfig_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("YOUTUBE_API_KEY=dotenv-key\nLOG_LEVEL=debug\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("YOUTUBE_API_KEY")
		os.Unsetenv("LOG_LEVEL")
	})

	config, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dotenv-key", config.APIKey)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestNewConfig_InvalidConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "port: [not a number")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError string
	}{
		{
			name:   "valid",
			config: &Config{APIKey: "key", Port: 5000},
		},
		{
			name:      "missing API key",
			config:    &Config{Port: 5000},
			wantError: "API key is required",
		},
		{
			name:      "port out of range",
			config:    &Config{APIKey: "key", Port: 70000},
			wantError: "invalid port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestConfig_AllowedOriginList(t *testing.T) {
	assert.Equal(t, []string{"*"}, (&Config{}).AllowedOriginList())
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://example.com"},
		(&Config{AllowedOrigins: " http://localhost:3000, ,https://example.com "}).AllowedOriginList(),
	)
}

func TestConfig_MaskedAPIKey(t *testing.T) {
	assert.Equal(t, "NOT FOUND", (&Config{}).MaskedAPIKey())
	assert.Equal(t, "AIza...", (&Config{APIKey: "AIzaSyExample"}).MaskedAPIKey())
	assert.Equal(t, "abc...", (&Config{APIKey: "abc"}).MaskedAPIKey())
}

func TestConfig_Addr(t *testing.T) {
	assert.Equal(t, ":5000", (&Config{Port: 5000}).Addr())
	assert.Equal(t, "127.0.0.1:8080", (&Config{Host: "127.0.0.1", Port: 8080}).Addr())
}

func TestInitConfig(t *testing.T) {
	home := isolate(t)

	// Test InitConfig with custom API key
	err := InitConfig("init-key")
	require.NoError(t, err)

	// Check config file was created with correct content
	configPath := filepath.Join(home, ".yt-channel", "config.yaml")
	assert.FileExists(t, configPath)

	// Load and verify config content
	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "init-key", config.APIKey)
	assert.Equal(t, DefaultPort, config.Port)

	// A second init must not clobber the existing file
	err = InitConfig("other-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestGetConfigPath(t *testing.T) {
	home := isolate(t)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".yt-channel", "config.yaml"), path)
}

func TestNewYouTubeService(t *testing.T) {
	_, err := NewYouTubeService(context.Background(), &Config{Port: 5000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	service, err := NewYouTubeService(context.Background(), &Config{
		APIKey:      "key",
		Port:        5000,
		APIEndpoint: "http://127.0.0.1:9/youtube/v3/",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9/youtube/v3/", service.BasePath)
}
