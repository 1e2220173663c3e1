package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig

	v *viper.Viper
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL              string
	Name             string
	CACertPath       string
	MaxConns         int32
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
	BreakerEnabled   bool
}

// URLConfigured reports whether a connection string was supplied
func (d DatabaseConfig) URLConfigured() bool {
	return strings.TrimSpace(d.URL) != ""
}

// NameConfigured reports whether a database name was supplied
func (d DatabaseConfig) NameConfigured() bool {
	return strings.TrimSpace(d.Name) != ""
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	// RecentTTLSeconds enables a per-process cache of unfiltered recent
	// listings. Zero reads from the store on every list request.
	RecentTTLSeconds int
}

// LoadEnvFile loads an explicit dotenv file into the process environment.
// Variables already present in the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("DATABASE_MAX_CONNS", 10)
	v.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")
	v.SetDefault("DATABASE_OPERATION_TIMEOUT", "5s")
	v.SetDefault("STORE_BREAKER_ENABLED", true)
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "coinsguard-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "coinsguard")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "coinsguard-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("RECENT_CACHE_TTL", 0)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:              v.GetString("DATABASE_URL"),
			Name:             v.GetString("DATABASE_NAME"),
			CACertPath:       v.GetString("DATABASE_CA_CERT"),
			MaxConns:         v.GetInt32("DATABASE_MAX_CONNS"),
			ConnectTimeout:   v.GetDuration("DATABASE_CONNECT_TIMEOUT"),
			OperationTimeout: v.GetDuration("DATABASE_OPERATION_TIMEOUT"),
			BreakerEnabled:   v.GetBool("STORE_BREAKER_ENABLED"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			RecentTTLSeconds: v.GetInt("RECENT_CACHE_TTL"),
		},
		v: v,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set.
// DATABASE_URL and DATABASE_NAME are deliberately optional: their absence
// is reported by the diagnostics probe instead of stopping the process.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("DATABASE_CONNECT_TIMEOUT must be positive")
	}
	if c.Database.OperationTimeout <= 0 {
		return fmt.Errorf("DATABASE_OPERATION_TIMEOUT must be positive")
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DATABASE_MAX_CONNS must be positive")
	}
	if c.Cache.RecentTTLSeconds < 0 {
		return fmt.Errorf("RECENT_CACHE_TTL must not be negative")
	}
	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}
	return nil
}

// Watch re-reads the .env file on change and hands the new LOG_LEVEL to
// onLevel. It is a no-op when configuration did not come from a file.
func (c *Config) Watch(onLevel func(level string, event fsnotify.Event)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		lvl := c.v.GetString("LOG_LEVEL")
		if lvl == "" || lvl == c.Logging.Level {
			return
		}
		c.Logging.Level = lvl
		onLevel(lvl, e)
	})
	c.v.WatchConfig()
}

// AllowsAllOrigins reports whether CORS is open to every origin
func (c *Config) AllowsAllOrigins() bool {
	for _, o := range c.Server.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
