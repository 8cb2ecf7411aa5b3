package authclient

import (
	"io"
	"strings"

	"github.com/MKhiriev/go-auth-session-client/internal/adapter"
	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/service"
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
	"github.com/MKhiriev/go-auth-session-client/models"
)

type (
	// Config is the configuration accepted by [New]. Start from
	// [DefaultConfig] and override fields as needed.
	Config = config.ClientConfig

	// Logger is the structured logger accepted by [New]. See [NewLogger].
	Logger = logger.Logger

	// SessionService reads, refreshes and revokes sessions.
	SessionService = service.SessionService

	// URLService builds login and register URLs carrying a redirect target.
	URLService = service.URLService

	// SessionError is returned by every [SessionService] method.
	SessionError = service.SessionError

	// TransportError is the cause of a [SessionError] when the HTTP call
	// itself failed.
	TransportError = adapter.TransportError
)

// Deployment environments accepted in [Config.Environment].
const (
	EnvDevelopment = config.EnvDevelopment
	EnvTest        = config.EnvTest
	EnvProduction  = config.EnvProduction
)

// Operation sentinels matched by errors.Is on a [SessionError].
var (
	ErrGetSession         = service.ErrGetSession
	ErrGetUserSessions    = service.ErrGetUserSessions
	ErrRefreshSession     = service.ErrRefreshSession
	ErrRevokeSession      = service.ErrRevokeSession
	ErrRevokeUserSessions = service.ErrRevokeUserSessions
)

// Status sentinels matched by errors.Is through a [TransportError].
var (
	ErrBadRequest           = adapter.ErrBadRequest
	ErrUnauthorized         = adapter.ErrUnauthorized
	ErrRefreshTokenRejected = adapter.ErrRefreshTokenRejected
	ErrNotFound             = adapter.ErrNotFound
	ErrServerError          = adapter.ErrServerError
	ErrUnexpectedStatus     = adapter.ErrUnexpectedStatus
)

// URL errors. Their messages read "Invalid URL: {url}" and
// "Invalid base URL: {url}".
var (
	ErrInvalidURL     = utils.ErrInvalidURL
	ErrInvalidBaseURL = utils.ErrInvalidBaseURL
)

// DefaultConfig returns the configuration for environment with its default
// base URL and the info log level. An empty environment means development.
func DefaultConfig(environment string) Config {
	environment = strings.ToLower(strings.TrimSpace(environment))
	if environment == "" {
		environment = EnvDevelopment
	}

	return Config{
		Environment: environment,
		BaseURL:     config.BaseURLFor(environment),
		LogLevel:    "info",
	}
}

// NewLogger returns a JSON logger writing to w at the named zerolog level.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *Logger {
	return logger.NewWithLevel(w, "authclient", level)
}

// ParseURL decomposes an absolute http(s) redirect URL into its parts.
func ParseURL(raw string) (models.URLParts, error) {
	return utils.ParseURL(raw)
}

// ConstructURLWithQueryParams appends parts to baseURL as the prefix, host,
// port and resources query parameters.
func ConstructURLWithQueryParams(baseURL string, parts models.URLParts) (string, error) {
	return utils.ConstructURLWithQueryParams(baseURL, parts)
}

// HasQueryParameter reports whether raw carries the query parameter name.
func HasQueryParameter(raw, name string) (bool, error) {
	return utils.HasQueryParameter(raw, name)
}
