package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Auth        AuthConfig    `toml:"auth"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// AuthConfig contains token signing and Google OAuth settings.
// All secrets are mandatory at startup; Validate reports missing ones.
type AuthConfig struct {
	JWTSecret          string `toml:"jwt_secret"`
	GoogleClientID     string `toml:"google_client_id"`
	GoogleClientSecret string `toml:"google_client_secret"`
	BackendURL         string `toml:"backend_url"`
	FrontendURL        string `toml:"frontend_url"`
	BcryptCost         int    `toml:"bcrypt_cost"`
}

// GoogleCallbackURL returns the redirect target registered with Google.
func (a *AuthConfig) GoogleCallbackURL() string {
	return strings.TrimSuffix(a.BackendURL, "/") + "/auth/google/callback"
}

// StorageConfig contains storage layer settings.
type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig contains BadgerDB-specific settings.
type BadgerConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies CLIENTDESK_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CLIENTDESK_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("CLIENTDESK_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("CLIENTDESK_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if secret := os.Getenv("CLIENTDESK_JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if id := os.Getenv("CLIENTDESK_GOOGLE_CLIENT_ID"); id != "" {
		config.Auth.GoogleClientID = id
	}
	if secret := os.Getenv("CLIENTDESK_GOOGLE_CLIENT_SECRET"); secret != "" {
		config.Auth.GoogleClientSecret = secret
	}
	if url := os.Getenv("CLIENTDESK_BACKEND_URL"); url != "" {
		config.Auth.BackendURL = url
	}
	if url := os.Getenv("CLIENTDESK_FRONTEND_URL"); url != "" {
		config.Auth.FrontendURL = url
	}
	if badgerPath := os.Getenv("CLIENTDESK_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if level := os.Getenv("CLIENTDESK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("CLIENTDESK_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory fields and returns a list of issues.
// An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Auth.JWTSecret == "" {
		issues = append(issues, "auth.jwt_secret is required (or set CLIENTDESK_JWT_SECRET)")
	}
	if c.Auth.GoogleClientID == "" {
		issues = append(issues, "auth.google_client_id is required (or set CLIENTDESK_GOOGLE_CLIENT_ID)")
	}
	if c.Auth.GoogleClientSecret == "" {
		issues = append(issues, "auth.google_client_secret is required (or set CLIENTDESK_GOOGLE_CLIENT_SECRET)")
	}
	if c.Auth.BackendURL == "" {
		issues = append(issues, "auth.backend_url is required (or set CLIENTDESK_BACKEND_URL)")
	}
	if c.Auth.FrontendURL == "" {
		issues = append(issues, "auth.frontend_url is required (or set CLIENTDESK_FRONTEND_URL)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	return issues
}

// IsDevMode returns true when running with environment "dev".
func (c *Config) IsDevMode() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "dev"
}
