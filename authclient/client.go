// Package authclient is the entry point of the auth session client.
//
// A [Client] bundles the session service, which reads, refreshes and revokes
// sessions on the backend, and the URL service, which builds login and
// register URLs carrying a redirect target:
//
//	client, err := authclient.NewFromEnv()
//	if err != nil {
//		return err
//	}
//
// or, with configuration injected by the caller:
//
//	cfg := authclient.DefaultConfig(authclient.EnvProduction)
//	cfg.RequestTimeout = 10 * time.Second
//	client, err := authclient.New(cfg, authclient.NewLogger(os.Stderr, "warn"))
//
//	session, err := client.Sessions().GetSessionByID(ctx, "123")
//	loginURL, err := client.URLs().GenerateLoginURL("https://app.example.com/dashboard")
package authclient

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-auth-session-client/internal/adapter"
	"github.com/MKhiriev/go-auth-session-client/internal/config"
	"github.com/MKhiriev/go-auth-session-client/internal/logger"
	"github.com/MKhiriev/go-auth-session-client/internal/service"
)

// Client is safe for concurrent use. It holds no per-call state.
type Client struct {
	cfg      Config
	services *service.Services

	logger *logger.Logger
}

// New wires a [Client] from cfg. A trailing slash on cfg.BaseURL is ignored.
// A nil log discards all output.
func New(cfg Config, log *Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	transport := adapter.NewHTTPTransport(cfg, log)

	return &Client{
		cfg:      cfg,
		services: service.NewServices(transport, cfg, log),
		logger:   log,
	}, nil
}

// NewFromEnv loads the configuration from the environment and the optional
// JSON file named by CONFIG, then calls [New] with a stderr logger at the
// configured level.
func NewFromEnv() (*Client, error) {
	cfg, err := config.GetClientConfig(flag.NewFlagSet("authclient", flag.ContinueOnError), nil)
	if err != nil {
		return nil, err
	}

	return New(*cfg, logger.NewWithLevel(os.Stderr, "authclient", cfg.LogLevel))
}

// Sessions returns the session service.
func (c *Client) Sessions() SessionService {
	return c.services.SessionService
}

// URLs returns the login/register URL service.
func (c *Client) URLs() URLService {
	return c.services.URLService
}

// Config returns the configuration the client was built from.
func (c *Client) Config() Config {
	return c.cfg
}
