// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when present; real environment variables
always win over the file.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, HTTP server) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/kahasolusi/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the CMS API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// RunMigrations applies the embedded schema migrations at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Token verification. Tokens are issued by the identity service.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required"`
	JWTIssuer     string `env:"JWT_ISSUER"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Tracing (OpenTelemetry)
	OTelEnabled     bool    `env:"OTEL_ENABLED"                envDefault:"false"`
	OTelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO"          envDefault:"0.1"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load(files ...string) (*Config, error) {

	// A missing .env is normal outside local development
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read env file: %w", err)
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = constants.DefaultAuthIssuer
	}

	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		return nil, fmt.Errorf("config: OTEL_SAMPLER_RATIO must be within [0, 1], got %v", cfg.OTelSampleRatio)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsOriginAllowed reports whether a browser origin may call the API.
//
// Entries starting with a dot match any subdomain (".kahasolusi.com").
func (c *Config) IsOriginAllowed(origin string) bool {
	if c.IsDevelopment() {
		return true
	}

	for _, allowed := range c.AllowedOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "" {
			continue
		}
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
		if strings.HasPrefix(allowed, ".") && strings.HasSuffix(origin, allowed) {
			return true
		}
	}

	return false
}
