// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// Environment names selecting the default backend base URL.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Default backend base URLs per environment.
const (
	DevelopmentBaseURL = "http://localhost:8080"
	ProductionBaseURL  = "https://auth.leultewolde.com"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a JSON file,
// environment variables, and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds deployment-level settings.
	App App `envPrefix:"APP_"`

	// Client holds outbound transport settings of the session client.
	Client Client `envPrefix:"CLIENT_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Stub holds settings of the backend stub.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds deployment-level settings.
type App struct {
	// Environment selects the default base URL: development, test, or
	// production. Empty means development.
	// Env: APP_ENV
	Environment string `env:"ENV"`
}

// Client holds outbound transport settings.
type Client struct {
	// BaseURL overrides the environment-selected backend base URL.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// timeout.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request when non-empty.
	// Env: CLIENT_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Stub holds settings of the backend stub.
type Stub struct {
	// Address is the listen address in host:port form.
	// Env: STUB_ADDRESS
	Address string `env:"ADDRESS"`

	// TokenSignKey signs the stub's HS256 access tokens.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the access token lifetime.
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DatabaseDSN selects a SQL store instead of the in-memory one:
	// "postgres://..." uses pgx, anything else is a SQLite file path.
	// Env: STUB_DATABASE_DSN
	DatabaseDSN string `env:"DATABASE_DSN"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Flags are parsed from args on fs, so callers keep access to the
// positional arguments through fs.Args().
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}
