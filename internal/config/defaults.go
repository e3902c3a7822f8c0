package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 5000,
			Host: "localhost",
		},
		Auth: AuthConfig{
			BcryptCost: 10,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/clientdesk",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
