// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort           = 8080
	DefaultTemplatesDir   = "templates"
	DefaultCriteriaFile   = "data/analysis-criteria.json"
	DefaultJobRolesFile   = "data/job-roles.json"
	DefaultSESRegion      = "us-east-1"
	DefaultFromEmail      = "noreply@smartresume.com"
	DefaultMaxUploadBytes = 5 << 20 // 5 MB, matches the upload form limit
)

// Config holds the runtime configuration read from the environment.
type Config struct {
	Port        int
	DatabaseURL string

	TemplatesDir string
	CriteriaFile string
	JobRolesFile string

	SESRegion string
	FromEmail string

	MaxUploadBytes int64
}

// Load reads configuration from environment variables, applying defaults for
// everything except DATABASE_URL, which is required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           DefaultPort,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		TemplatesDir:   envOr("TEMPLATES_DIR", DefaultTemplatesDir),
		CriteriaFile:   envOr("CRITERIA_FILE", DefaultCriteriaFile),
		JobRolesFile:   envOr("JOB_ROLES_FILE", DefaultJobRolesFile),
		SESRegion:      envOr("SES_REGION", DefaultSESRegion),
		FromEmail:      envOr("FROM_EMAIL", DefaultFromEmail),
		MaxUploadBytes: DefaultMaxUploadBytes,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if maxStr := os.Getenv("MAX_UPLOAD_BYTES"); maxStr != "" {
		max, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		cfg.MaxUploadBytes = max
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got: %d", c.MaxUploadBytes)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
