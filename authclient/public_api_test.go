package authclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-session-client/authclient"
	"github.com/MKhiriev/go-auth-session-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Session{ID: 1, AccessToken: "a", RefreshToken: "r", Device: "web"})
	})
	mux.HandleFunc("GET /sessions/2", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session was not found", http.StatusNotFound)
	})
	mux.HandleFunc("PATCH /sessions/1", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "refresh token does not match", http.StatusUnauthorized)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newInjectedClient(t *testing.T, baseURL string) *authclient.Client {
	t.Helper()

	cfg := authclient.DefaultConfig(authclient.EnvTest)
	cfg.BaseURL = baseURL + "/"
	cfg.RequestTimeout = 5 * time.Second

	client, err := authclient.New(cfg, authclient.NewLogger(new(bytes.Buffer), "error"))
	require.NoError(t, err)
	return client
}

func TestDefaultConfig(t *testing.T) {
	dev := authclient.DefaultConfig("")
	assert.Equal(t, authclient.EnvDevelopment, dev.Environment)
	assert.Equal(t, "http://localhost:8080", dev.BaseURL)
	assert.Equal(t, "info", dev.LogLevel)

	prod := authclient.DefaultConfig(" Production ")
	assert.Equal(t, authclient.EnvProduction, prod.Environment)
	assert.Equal(t, "https://auth.leultewolde.com", prod.BaseURL)

	_, err := authclient.New(authclient.DefaultConfig("staging"), nil)
	assert.Error(t, err)
}

func TestInjectedConfig_Sessions(t *testing.T) {
	srv := newBackend(t)
	client := newInjectedClient(t, srv.URL)
	ctx := context.Background()

	assert.Equal(t, srv.URL, client.Config().BaseURL)

	var sessions authclient.SessionService = client.Sessions()
	session, err := sessions.GetSessionByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.Session{ID: 1, AccessToken: "a", RefreshToken: "r", Device: "web"}, session)

	_, err = sessions.GetSessionByID(ctx, "2")
	require.Error(t, err)
	assert.EqualError(t, err, "Error getting session with ID: 2")
	assert.ErrorIs(t, err, authclient.ErrGetSession)
	assert.ErrorIs(t, err, authclient.ErrNotFound)

	var sessionErr *authclient.SessionError
	require.True(t, errors.As(err, &sessionErr))
	assert.Equal(t, authclient.ErrGetSession, sessionErr.Op)

	var transportErr *authclient.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, srv.URL+"/sessions/2", transportErr.URL)

	_, err = sessions.RefreshSession(ctx, "1", "spent")
	assert.ErrorIs(t, err, authclient.ErrRefreshSession)
	assert.ErrorIs(t, err, authclient.ErrUnauthorized)
	assert.ErrorIs(t, err, authclient.ErrRefreshTokenRejected)
}

func TestInjectedConfig_URLs(t *testing.T) {
	client := newInjectedClient(t, "http://auth.example.com")

	var urls authclient.URLService = client.URLs()
	loginURL, err := urls.GenerateLoginURL("http://example.com:3000/path/to/resource")
	require.NoError(t, err)
	assert.Equal(t, "http://auth.example.com/auth/login/?prefix=http&host=example.com&port=3000&resources=path.to.resource", loginURL)
}

func TestURLHelpers(t *testing.T) {
	parts, err := authclient.ParseURL("https://example.com/test/auth?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, models.URLParts{Prefix: "https", Host: "example.com", Resources: "test.auth"}, parts)

	built, err := authclient.ConstructURLWithQueryParams("http://localhost:8080/auth/register/", parts)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/auth/register/?prefix=https&host=example.com&resources=test.auth", built)

	ok, err := authclient.HasQueryParameter(built, "resources")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = authclient.ParseURL("invalid-url")
	assert.ErrorIs(t, err, authclient.ErrInvalidURL)
	assert.EqualError(t, err, "Invalid URL: invalid-url")

	_, err = authclient.ConstructURLWithQueryParams("invalid-url", parts)
	assert.ErrorIs(t, err, authclient.ErrInvalidBaseURL)

	_, err = authclient.HasQueryParameter("invalid-url", "host")
	assert.ErrorIs(t, err, authclient.ErrInvalidURL)
}
