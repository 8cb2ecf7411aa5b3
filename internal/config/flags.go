package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers all configuration flags on fs and parses args.
// A nil fs is replaced with a fresh ContinueOnError set.
//
// Flags:
//
//	-env deployment environment (development, test, production)
//	-base-url backend base URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-user-agent User-Agent header value
//	-log-level log level (debug, info, warn, error)
//	-a stub listen address in format [host]:[port]
//	-token-sign-key stub access token signing key
//	-token-duration stub access token lifetime (e.g., "15m")
//	-d stub database DSN (empty keeps the in-memory store)
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	if fs == nil {
		fs = flag.NewFlagSet("config", flag.ContinueOnError)
	}

	var stubAddress NetAddress
	var environment string
	var baseURL string
	var requestTimeout time.Duration
	var userAgent string
	var logLevel string
	var tokenSignKey string
	var tokenDuration time.Duration
	var databaseDSN string
	var jsonConfigPath string

	fs.StringVar(&environment, "env", "", "Deployment environment (development, test, production)")
	fs.StringVar(&baseURL, "base-url", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header value")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.Var(&stubAddress, "a", "Stub net address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Stub token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Stub token duration (e.g., 15m, 1h)")
	fs.StringVar(&databaseDSN, "d", "", "Stub database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Client: Client{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Log: Log{
			Level: logLevel,
		},
		Stub: Stub{
			Address:       stubAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			DatabaseDSN:   databaseDSN,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
