package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// ClientConfig is the immutable configuration injected into the session
// client and URL service. Build it with [GetClientConfig] or
// [NewClientConfig].
type ClientConfig struct {
	// Environment is the resolved deployment environment.
	Environment string
	// BaseURL is the backend base URL without a trailing slash.
	BaseURL string
	// RequestTimeout bounds a single outbound request; zero means no timeout.
	RequestTimeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// LoginURL is the login page the redirect parameters are appended to.
func (cfg ClientConfig) LoginURL() string {
	return cfg.BaseURL + "/auth/login/"
}

// RegisterURL is the register page the redirect parameters are appended to.
func (cfg ClientConfig) RegisterURL() string {
	return cfg.BaseURL + "/auth/register/"
}

// SessionsURL is the root of the sessions resource.
func (cfg ClientConfig) SessionsURL() string {
	return cfg.BaseURL + "/sessions"
}

// GetClientConfig loads the structured configuration from env, flags parsed
// from args on fs, and an optional JSON file, then derives and validates a
// [ClientConfig] from it.
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the client-relevant fields of cfg, fills in the
// environment defaults, and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	environment := strings.ToLower(strings.TrimSpace(cfg.App.Environment))
	if environment == "" {
		environment = EnvDevelopment
	}

	baseURL := strings.TrimSpace(cfg.Client.BaseURL)
	if baseURL == "" {
		baseURL = BaseURLFor(environment)
	}

	logLevel := cfg.Log.Level
	if logLevel == "" {
		logLevel = "info"
	}

	clientCfg := &ClientConfig{
		Environment:    environment,
		BaseURL:        strings.TrimRight(baseURL, "/"),
		RequestTimeout: cfg.Client.RequestTimeout,
		UserAgent:      cfg.Client.UserAgent,
		LogLevel:       logLevel,
	}

	if err := clientCfg.Validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// BaseURLFor returns the default backend base URL for environment. Unknown
// environments fall back to the development URL.
func BaseURLFor(environment string) string {
	if environment == EnvProduction {
		return ProductionBaseURL
	}

	return DevelopmentBaseURL
}
