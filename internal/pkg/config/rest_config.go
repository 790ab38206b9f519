package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// RestConfig aggregates the settings required by the REST API entrypoint.
type RestConfig struct {
	Port     int              `json:"port" mapstructure:"port" validate:"required,gt=0,lte=65535"`
	Logger   LoggerSettings   `json:"logger" mapstructure:"logger"`
	Database DatabaseSettings `json:"database" mapstructure:"database"`
}

// InitializeRestConfig reads the JSON config file at path, applies
// environment variable overrides and validates the result.
// Recognized overrides: SERVER_PORT, LOG_LEVEL, LOG_TYPE, DB_TYPE, DB_DSN.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := &RestConfig{
		Port: 8080,
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
		},
	}

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *RestConfig) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logger.LogLevel = v
	}
	if v := os.Getenv("LOG_TYPE"); v != "" {
		cfg.Logger.LogType = v
	}
	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.Database.Type = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
}

// Validate checks the aggregated configuration.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}

	return nil
}
