package service

import (
	"github.com/MKhiriev/go-auth-session-client/internal/adapter"
	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
)

// Services aggregates the client-side services built from one
// [config.ClientConfig].
type Services struct {
	SessionService SessionService
	URLService     URLService
}

// NewServices wires the session and URL services on top of transport.
func NewServices(transport adapter.Transport, cfg config.ClientConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService: NewSessionService(transport, cfg.BaseURL, logger),
		URLService:     NewURLService(cfg.LoginURL(), cfg.RegisterURL()),
	}
}
