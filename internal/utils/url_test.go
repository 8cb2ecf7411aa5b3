package utils

import (
	"net/url"
	"testing"

	"github.com/MKhiriev/go-auth-session-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.URLParts
	}{
		{
			name: "prefix, host and port only",
			url:  "http://localhost:3000/",
			want: models.URLParts{Prefix: "http", Host: "localhost", Port: "3000"},
		},
		{
			name: "prefix, host, port and resources",
			url:  "http://localhost:3000/test/auth",
			want: models.URLParts{Prefix: "http", Host: "localhost", Port: "3000", Resources: "test.auth"},
		},
		{
			name: "prefix, host and resources without port",
			url:  "https://example.com/test/auth",
			want: models.URLParts{Prefix: "https", Host: "example.com", Resources: "test.auth"},
		},
		{
			name: "prefix and host only",
			url:  "https://www.example.com",
			want: models.URLParts{Prefix: "https", Host: "www.example.com"},
		},
		{
			name: "unusual paths",
			url:  "http://localhost:8080/a/b/c",
			want: models.URLParts{Prefix: "http", Host: "localhost", Port: "8080", Resources: "a.b.c"},
		},
		{
			name: "query parameters ignored",
			url:  "http://localhost:3000/test/auth?key=value",
			want: models.URLParts{Prefix: "http", Host: "localhost", Port: "3000", Resources: "test.auth"},
		},
		{
			name: "fragment ignored",
			url:  "http://localhost:3000/test/auth#section",
			want: models.URLParts{Prefix: "http", Host: "localhost", Port: "3000", Resources: "test.auth"},
		},
		{
			name: "query and fragment ignored",
			url:  "https://example.com/test/auth?x=1#frag",
			want: models.URLParts{Prefix: "https", Host: "example.com", Resources: "test.auth"},
		},
		{
			name: "root path has no resources",
			url:  "http://example.com/",
			want: models.URLParts{Prefix: "http", Host: "example.com"},
		},
		{
			name: "single segment",
			url:  "http://example.com/test",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "test"},
		},
		{
			name: "special characters in resources",
			url:  "http://example.com/test/auth@",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "test.auth@"},
		},
		{
			name: "default port dropped",
			url:  "https://example.com:443/x",
			want: models.URLParts{Prefix: "https", Host: "example.com", Resources: "x"},
		},
		{
			name: "host lower-cased",
			url:  "http://Example.COM:8080/Path",
			want: models.URLParts{Prefix: "http", Host: "example.com", Port: "8080", Resources: "Path"},
		},
		{
			name: "trailing slash keeps empty last segment",
			url:  "http://example.com/a/",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "a."},
		},
		{
			name: "dot segments resolved",
			url:  "http://example.com/a/../b",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "b"},
		},
		{
			name: "single dot segments dropped",
			url:  "http://example.com/a/./b/.",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "a.b."},
		},
		{
			name: "escaped dot segments resolved",
			url:  "http://example.com/a/%2E%2e/b",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "b"},
		},
		{
			name: "dot segments never climb above root",
			url:  "http://example.com/../../x",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "x"},
		},
		{
			name: "path resolving to root has no resources",
			url:  "http://example.com/a/..",
			want: models.URLParts{Prefix: "http", Host: "example.com"},
		},
		{
			name: "ipv6 host keeps brackets",
			url:  "http://[::1]:3000/x",
			want: models.URLParts{Prefix: "http", Host: "[::1]", Port: "3000", Resources: "x"},
		},
		{
			name: "port leading zeros normalized",
			url:  "http://example.com:03000/",
			want: models.URLParts{Prefix: "http", Host: "example.com", Port: "3000"},
		},
		{
			name: "highest port accepted",
			url:  "http://example.com:65535/",
			want: models.URLParts{Prefix: "http", Host: "example.com", Port: "65535"},
		},
		{
			name: "escaped path stays escaped",
			url:  "http://example.com/my%20docs/x",
			want: models.URLParts{Prefix: "http", Host: "example.com", Resources: "my%20docs.x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURL_Invalid(t *testing.T) {
	tests := []string{
		"localhost:3000/test/auth",
		"http:/invalid-url",
		"invalid-url",
		"ftp://example.com/file",
		"HTTP://example.com",
		"http://",
		"http://exa mple.com/",
		"http://example.com:99999/a",
		"http://example.com:65536/",
		"",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseURL(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidURL)
			assert.Equal(t, "Invalid URL: "+raw, err.Error())
		})
	}
}

func TestConstructURLWithQueryParams(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		parts   models.URLParts
		want    string
	}{
		{
			name:    "all parts",
			baseURL: "http://example.com/api/",
			parts:   models.URLParts{Prefix: "http", Host: "localhost", Port: "3000", Resources: "test.auth"},
			want:    "http://example.com/api/?prefix=http&host=localhost&port=3000&resources=test.auth",
		},
		{
			name:    "without optional fields",
			baseURL: "http://example.com/api",
			parts:   models.URLParts{Prefix: "https", Host: "www.example.com"},
			want:    "http://example.com/api?prefix=https&host=www.example.com",
		},
		{
			name:    "resources without port",
			baseURL: "http://example.com/api",
			parts:   models.URLParts{Prefix: "https", Host: "example.com", Resources: "a.b"},
			want:    "http://example.com/api?prefix=https&host=example.com&resources=a.b",
		},
		{
			name:    "empty path serialized as root",
			baseURL: "http://localhost:8080",
			parts:   models.URLParts{Prefix: "https", Host: "example.com"},
			want:    "http://localhost:8080/?prefix=https&host=example.com",
		},
		{
			name:    "existing query parameters preserved",
			baseURL: "http://example.com/login?lang=en",
			parts:   models.URLParts{Prefix: "http", Host: "localhost", Port: "3000"},
			want:    "http://example.com/login?lang=en&prefix=http&host=localhost&port=3000",
		},
		{
			name:    "fragment preserved",
			baseURL: "http://example.com/login#top",
			parts:   models.URLParts{Prefix: "http", Host: "localhost"},
			want:    "http://example.com/login?prefix=http&host=localhost#top",
		},
		{
			name:    "non-web absolute base accepted as is",
			baseURL: "mailto:a@b",
			parts:   models.URLParts{Prefix: "http", Host: "h"},
			want:    "mailto:a@b?prefix=http&host=h",
		},
		{
			name:    "values are query-escaped",
			baseURL: "http://example.com/",
			parts:   models.URLParts{Prefix: "http", Host: "example.com", Resources: "test.auth@"},
			want:    "http://example.com/?prefix=http&host=example.com&resources=test.auth%40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConstructURLWithQueryParams(tt.baseURL, tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstructURLWithQueryParams_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"invalid-url", "/relative/path", "http://bad host/", "http:/x", "https:no-host"} {
		t.Run(base, func(t *testing.T) {
			_, err := ConstructURLWithQueryParams(base, models.URLParts{Prefix: "https", Host: "www.example.com"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBaseURL)
			assert.Equal(t, "Invalid base URL: "+base, err.Error())
		})
	}
}

// TestConstructURLWithQueryParams_RoundTrip verifies that every field set on
// the parts can be read back from the constructed URL.
func TestConstructURLWithQueryParams_RoundTrip(t *testing.T) {
	parts := []models.URLParts{
		{Prefix: "http", Host: "localhost", Port: "3000", Resources: "test.auth"},
		{Prefix: "https", Host: "example.com", Port: "8443", Resources: "a.b.c@d"},
		{Prefix: "https", Host: "example.com", Port: "1", Resources: "x y&z=1"},
	}

	for _, want := range parts {
		built, err := ConstructURLWithQueryParams("http://localhost:8080/auth/login/", want)
		require.NoError(t, err)

		u, err := url.Parse(built)
		require.NoError(t, err)
		q := u.Query()
		assert.Equal(t, want.Prefix, q.Get("prefix"))
		assert.Equal(t, want.Host, q.Get("host"))
		assert.Equal(t, want.Port, q.Get("port"))
		assert.Equal(t, want.Resources, q.Get("resources"))

		got, err := ExtractURLParts(built)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestHasQueryParameter(t *testing.T) {
	ok, err := HasQueryParameter("http://example.com/?prefix=http&host=", "host")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasQueryParameter("http://example.com/?prefix=http", "port")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HasQueryParameter("invalid-url", "port")
	require.Error(t, err)
	assert.Equal(t, "Invalid URL: invalid-url", err.Error())
}

func TestExtractURLParts_MissingRequired(t *testing.T) {
	_, err := ExtractURLParts("http://example.com/?prefix=http")
	assert.ErrorIs(t, err, ErrInvalidURL)

	_, err = ExtractURLParts("not a url")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestBuildRedirectURL(t *testing.T) {
	tests := []struct {
		name  string
		parts models.URLParts
		want  string
	}{
		{
			name:  "all parts",
			parts: models.URLParts{Prefix: "http", Host: "localhost", Port: "3000", Resources: "dashboard"},
			want:  "http://localhost:3000/dashboard",
		},
		{
			name:  "nested resources",
			parts: models.URLParts{Prefix: "https", Host: "example.com", Resources: "path.to.resource"},
			want:  "https://example.com/path/to/resource",
		},
		{
			name:  "no resources",
			parts: models.URLParts{Prefix: "https", Host: "example.com"},
			want:  "https://example.com/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildRedirectURL(tt.parts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRedirectURL_Invalid(t *testing.T) {
	_, err := BuildRedirectURL(models.URLParts{Prefix: "ftp", Host: "example.com"})
	assert.ErrorIs(t, err, ErrInvalidURL)

	_, err = BuildRedirectURL(models.URLParts{Prefix: "http"})
	assert.ErrorIs(t, err, ErrInvalidURL)
}

// TestParseThenBuild verifies that a redirect URL survives the trip through
// query parameters for paths without dots.
func TestParseThenBuild(t *testing.T) {
	for _, raw := range []string{
		"http://example.com:3000/path/to/resource",
		"https://example.com/dashboard",
		"http://localhost:3000/",
		"http://[::1]:3000/x",
	} {
		parts, err := ParseURL(raw)
		require.NoError(t, err)

		got, err := BuildRedirectURL(parts)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
}
