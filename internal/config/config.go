package config

import (
	"os"
	"strconv"

	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Server   ServerConfig
	Upload   UploadConfig
	LogLevel internal.LogLevel
}

// AnalysisConfig holds the defaults applied to every analysis
type AnalysisConfig struct {
	Alpha          float64
	IndependentVar string
	DependentVar   string
	Seed           int64 // 0: hypothesis phrasing seeded from the clock
}

// ServerConfig holds web server settings
type ServerConfig struct {
	APIPort string
	UIPort  string
	GinMode string
}

// UploadConfig bounds what the HTTP surfaces accept
type UploadConfig struct {
	MaxMB   int
	MaxRows int
	Sheet   string
}

// MaxBytes is the upload limit in bytes
func (u UploadConfig) MaxBytes() int64 {
	return int64(u.MaxMB) * 1024 * 1024
}

// Options converts the analysis defaults to pipeline options
func (a AnalysisConfig) Options() ttest.Options {
	return ttest.Options{
		Alpha:          a.Alpha,
		IndependentVar: a.IndependentVar,
		DependentVar:   a.DependentVar,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	alpha, err := getEnvFloat("TTEST_ALPHA", ttest.DefaultAlpha)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}
	seed, err := getEnvInt64("TTEST_SEED", 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}
	maxMB, err := getEnvInt("MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load upload configuration")
	}
	maxRows, err := getEnvInt("MAX_ROWS", 100000)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load upload configuration")
	}

	level, ok := internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "INFO"))
	if !ok {
		return nil, errors.ConfigInvalid("LOG_LEVEL must be one of ERROR, WARN, INFO, DEBUG, TRACE")
	}

	config := &Config{
		Analysis: AnalysisConfig{
			Alpha:          alpha,
			IndependentVar: getEnvOrDefault("TTEST_IV_NAME", ttest.DefaultIndependentVar),
			DependentVar:   getEnvOrDefault("TTEST_DV_NAME", ttest.DefaultDependentVar),
			Seed:           seed,
		},
		Server: ServerConfig{
			APIPort: getEnvOrDefault("API_PORT", "8080"),
			UIPort:  getEnvOrDefault("UI_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Upload: UploadConfig{
			MaxMB:   maxMB,
			MaxRows: maxRows,
			Sheet:   os.Getenv("EXCEL_SHEET"),
		},
		LogLevel: level,
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if !(c.Analysis.Alpha > 0 && c.Analysis.Alpha < 1) {
		return errors.ConfigInvalid("TTEST_ALPHA must be between 0 and 1")
	}
	if c.Upload.MaxMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if c.Upload.MaxRows < 0 {
		return errors.ConfigInvalid("MAX_ROWS must not be negative")
	}
	if c.Server.APIPort == "" || c.Server.UIPort == "" {
		return errors.ConfigInvalid("API_PORT and UI_PORT are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a number")
	}
	return floatValue, nil
}
