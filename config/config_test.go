package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "production environment",
			config:   &Config{Server: ServerConfig{AppEnv: "production"}},
			expected: false,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000", AllowedOrigins: []string{"*"}},
		Database: DatabaseConfig{
			MaxConns:         10,
			ConnectTimeout:   10 * time.Second,
			OperationTimeout: 5 * time.Second,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "database settings are optional",
			mutate: func(c *Config) {},
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name:     "no cors origins",
			mutate:   func(c *Config) { c.Server.AllowedOrigins = nil },
			errorMsg: "ALLOWED_CORS_ORIGINS is required",
		},
		{
			name:     "zero connect timeout",
			mutate:   func(c *Config) { c.Database.ConnectTimeout = 0 },
			errorMsg: "DATABASE_CONNECT_TIMEOUT must be positive",
		},
		{
			name:     "zero operation timeout",
			mutate:   func(c *Config) { c.Database.OperationTimeout = 0 },
			errorMsg: "DATABASE_OPERATION_TIMEOUT must be positive",
		},
		{
			name:     "negative recent cache ttl",
			mutate:   func(c *Config) { c.Cache.RecentTTLSeconds = -1 },
			errorMsg: "RECENT_CACHE_TTL must not be negative",
		},
		{
			name:     "profiling without endpoint",
			mutate:   func(c *Config) { c.Profiling.Enabled = true },
			errorMsg: "O11Y_PROFILING_ENDPOINT is required when profiling is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errorMsg, err.Error())
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "coinsguard")
	t.Setenv("DATABASE_OPERATION_TIMEOUT", "2s")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.Equal(t, "coinsguard", cfg.Database.Name)
	assert.Equal(t, 2*time.Second, cfg.Database.OperationTimeout)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.AllowsAllOrigins())
	assert.True(t, cfg.Database.URLConfigured())
	assert.True(t, cfg.Database.NameConfigured())
}

func TestLoad_MissingDatabaseSettingsDoNotFail(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Database.URLConfigured())
	assert.False(t, cfg.Database.NameConfigured())
	assert.True(t, cfg.AllowsAllOrigins())
	assert.Zero(t, cfg.Cache.RecentTTLSeconds)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(""))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COINSGUARD_TEST_ONLY=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("COINSGUARD_TEST_ONLY") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("COINSGUARD_TEST_ONLY"))

	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
