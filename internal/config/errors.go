package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidEnvironment indicates an APP_ENV value other than
	// development, test, or production.
	ErrInvalidEnvironment = errors.New("invalid environment")
	// ErrInvalidBaseURL indicates a base URL that is not an absolute
	// http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
	// ErrInvalidTimeout indicates a negative request timeout.
	ErrInvalidTimeout = errors.New("invalid request timeout")
	// ErrInvalidLogLevel indicates an unknown zerolog level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidStubConfigs indicates a stub config without an address or
	// signing key.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)
