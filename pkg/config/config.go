package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PODCAST_SERVER_PORT
const EnvPrefix = "PODCAST"

var (
	once    sync.Once
	initErr error

	// Path is the settings file read by Init. Missing files are not an error.
	Path = "./config/settings.yaml"

	// EnvFile is an optional dotenv file loaded before environment overrides are read.
	EnvFile = ".env"
)

// placeholder secrets that must never reach production
var placeholders = []string{
	"",
	"changeme",
	"CHANGEME",
	"YOUR_SECRET_HERE",
	"dev-secret-change-me",
}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Values from .env become regular environment variables; existing ones win
		if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			initErr = fmt.Errorf("error reading env file %s: %w", EnvFile, err)
			return
		}

		viper.SetEnvPrefix(EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(Path)
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		cfg, err := GetConfig()
		if err != nil {
			initErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// Reset clears loaded configuration so Init can run again
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Load initializes configuration if needed and returns the validated struct
func Load() (*Config, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks a Config and fills in corrected values where a safe default exists
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("invalid server port: %d", c.Server.Port))
	}

	switch c.Database.Driver {
	case "", "sqlite":
		c.Database.Driver = "sqlite"
	case "postgres":
		if c.Database.DSN == "" {
			return apperrors.ConfigError("database.dsn", "required when database.driver is postgres")
		}
	default:
		return apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", c.Database.Driver))
	}

	if c.Auth.TokenTTL < 0 {
		return apperrors.ConfigError("auth.token_ttl", "must not be negative")
	}

	if c.IsProduction() {
		for _, placeholder := range placeholders {
			if c.Auth.JWTSecret == placeholder {
				return apperrors.ConfigError("auth.jwt_secret", "cannot use placeholder values in production")
			}
		}
	}

	if c.RateLimiting.RPS <= 0 {
		c.RateLimiting.RPS = 10
	}
	if c.RateLimiting.Burst <= 0 {
		c.RateLimiting.Burst = 20
	}

	return nil
}

// IsProduction reports whether the environment is a production one
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.idle_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/podcast.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.verbose", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)
	viper.SetDefault("auth.bcrypt_cost", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.enable_request_id", true)
}
