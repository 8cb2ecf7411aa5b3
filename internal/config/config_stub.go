package config

import (
	"flag"
	"fmt"
	"time"
)

const (
	defaultStubAddress       = "localhost:8080"
	defaultStubTokenDuration = 15 * time.Minute
)

// StubConfig configures the backend stub.
type StubConfig struct {
	// Address is the listen address in host:port form.
	Address string
	// TokenSignKey signs the HS256 access tokens issued by the stub.
	TokenSignKey string
	// TokenDuration is the access token lifetime.
	TokenDuration time.Duration
	// DatabaseDSN selects the SQL store; empty keeps sessions in memory.
	DatabaseDSN string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetStubConfig loads the structured configuration and derives a validated
// [StubConfig] from it.
func GetStubConfig(fs *flag.FlagSet, args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		Address:       cfg.Stub.Address,
		TokenSignKey:  cfg.Stub.TokenSignKey,
		TokenDuration: cfg.Stub.TokenDuration,
		DatabaseDSN:   cfg.Stub.DatabaseDSN,
		LogLevel:      cfg.Log.Level,
	}
	if stubCfg.Address == "" {
		stubCfg.Address = defaultStubAddress
	}
	if stubCfg.TokenDuration == 0 {
		stubCfg.TokenDuration = defaultStubTokenDuration
	}
	if stubCfg.LogLevel == "" {
		stubCfg.LogLevel = "info"
	}

	return stubCfg, stubCfg.validate()
}
