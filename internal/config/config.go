// Package config loads application settings from an optional YAML file with
// environment variable overrides. A missing file is not an error; defaults
// cover every setting, so the binary runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends selectable via storage.backend.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// Config represents the application configuration.
type Config struct {
	Storage struct {
		Backend      string `yaml:"backend" env:"STORAGE_BACKEND"`
		SnapshotPath string `yaml:"snapshot_path" env:"STORAGE_SNAPSHOT_PATH"`
	} `yaml:"storage"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(config *Config) {
	config.Storage.Backend = BackendJSON
	config.Storage.SnapshotPath = "students.json"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "studentms"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 10
	config.Database.MinConns = 2
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "console"
}

// validateConfig ensures that the configuration is usable.
func validateConfig(config *Config) error {
	switch config.Storage.Backend {
	case BackendJSON, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)",
			config.Storage.Backend, BackendJSON, BackendPostgres)
	}

	if config.Storage.Backend == BackendJSON && config.Storage.SnapshotPath == "" {
		return fmt.Errorf("storage snapshot path is required for the %s backend", BackendJSON)
	}

	if config.Storage.Backend == BackendPostgres {
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database conn_max_lifetime format: %w", err)
	}

	return nil
}

// ConnMaxLifetimeDuration returns database.conn_max_lifetime parsed as a
// duration. The value is validated at load time.
func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, err := time.ParseDuration(c.Database.ConnMaxLifetime)
	if err != nil {
		return time.Hour
	}
	return d
}

// GetPostgresConnectionString returns the postgres connection string.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
