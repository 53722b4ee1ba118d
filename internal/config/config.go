// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

// Package config provides layered configuration for AgriProfit using Koanf v2.
//
// Sources, lowest to highest priority:
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or conventional paths)
//  3. Environment variables (SERVER_PORT, LOG_LEVEL, MODEL_DIR, ...)
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Models  ModelsConfig  `koanf:"models"`
	Catalog CatalogConfig `koanf:"catalog"`
	HTTP    HTTPConfig    `koanf:"http"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host" validate:"required"`

	// Port is the listen port.
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// Timeout applies to both read and write.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// ModelsConfig locates the serialized predictor files.
// All four files must exist at startup; a missing file is fatal.
type ModelsConfig struct {
	// Dir is the directory holding the model files.
	Dir string `koanf:"dir" validate:"required"`

	// Classifier is the crop classifier file name inside Dir.
	Classifier string `koanf:"classifier" validate:"required"`

	// YieldRegressor is the yield regressor file name inside Dir.
	YieldRegressor string `koanf:"yield_regressor" validate:"required"`

	// ExpenseRegressor is the expense regressor file name inside Dir.
	ExpenseRegressor string `koanf:"expense_regressor" validate:"required"`

	// LabelEncoder is the label decoder file name inside Dir.
	LabelEncoder string `koanf:"label_encoder" validate:"required"`
}

// CatalogConfig locates the reference dataset that provides the known crop
// vocabulary. A missing dataset is non-fatal; resolution and suggestions
// degrade to their fallback behavior.
type CatalogConfig struct {
	// DatasetPath is the reference CSV with a "label" column.
	DatasetPath string `koanf:"dataset_path"`
}

// HTTPConfig holds middleware settings for the API surface.
type HTTPConfig struct {
	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests is the standard-tier request budget per window.
	RateLimitRequests int `koanf:"rate_limit_requests" validate:"min=1"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"min=1s"`

	// RateLimitDisabled turns off rate limiting entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Default model file names match the exporter's output.
const (
	DefaultClassifierFile       = "crop_classifier.json"
	DefaultYieldRegressorFile   = "yield_regressor.json"
	DefaultExpenseRegressorFile = "expense_regressor.json"
	DefaultLabelEncoderFile     = "label_encoder.json"
)

// defaultConfig returns a Config with all default values applied.
// Defaults are loaded first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Models: ModelsConfig{
			Dir:              "models",
			Classifier:       DefaultClassifierFile,
			YieldRegressor:   DefaultYieldRegressorFile,
			ExpenseRegressor: DefaultExpenseRegressorFile,
			LabelEncoder:     DefaultLabelEncoderFile,
		},
		Catalog: CatalogConfig{
			DatasetPath: "models/agri_dataset_5000.csv",
		},
		HTTP: HTTPConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// validate is the package-level validator instance. Struct metadata is
// cached across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid config: field %s failed %q validation", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
