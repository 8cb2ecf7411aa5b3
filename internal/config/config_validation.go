// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// Validate checks that a [ClientConfig] is usable before any component is
// constructed from it.
func (cfg *ClientConfig) Validate() error {
	switch cfg.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, cfg.Environment)
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, cfg.RequestTimeout)
	}

	if _, err = zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Address == "" || cfg.TokenSignKey == "" || cfg.TokenDuration < 0 {
		return ErrInvalidStubConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
