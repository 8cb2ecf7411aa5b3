package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-auth-session-client/models"
)

// Query parameter names carrying the parts of a redirect URL.
const (
	QueryParamPrefix    = "prefix"
	QueryParamHost      = "host"
	QueryParamPort      = "port"
	QueryParamResources = "resources"
)

var (
	// ErrInvalidURL is wrapped by errors for redirect URLs that are not
	// absolute http(s) URLs. The message reads "Invalid URL: {url}".
	ErrInvalidURL = errors.New("Invalid URL")

	// ErrInvalidBaseURL is wrapped by errors for unparseable base URLs. The
	// message reads "Invalid base URL: {url}".
	ErrInvalidBaseURL = errors.New("Invalid base URL")
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// ParseURL decomposes an absolute http(s) URL into [models.URLParts].
//
// Host is lower-cased and keeps its brackets when it is an IPv6 literal. Port
// is kept only when it is explicit and differs from the scheme default; ports
// outside 0..65535 are invalid. Resources is the escaped path, with dot
// segments resolved, without its leading slash and with "/" replaced by ".";
// it is absent for an empty or root path. Query and fragment are ignored.
func ParseURL(raw string) (models.URLParts, error) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return models.URLParts{}, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return models.URLParts{}, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	host := strings.ToLower(u.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	parts := models.URLParts{Prefix: u.Scheme, Host: host}

	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return models.URLParts{}, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
		}
		if port = strconv.Itoa(n); port != defaultPorts[u.Scheme] {
			parts.Port = port
		}
	}

	if path := removeDotSegments(u.EscapedPath()); path != "" && path != "/" {
		parts.Resources = strings.ReplaceAll(strings.TrimPrefix(path, "/"), "/", ".")
	}

	return parts, nil
}

// removeDotSegments resolves "." and ".." segments of an absolute escaped
// path. A trailing dot segment leaves a trailing slash; ".." never climbs
// above the root. Empty segments are kept.
func removeDotSegments(path string) string {
	if path == "" {
		return ""
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	out := make([]string, 0, len(segments))
	for i, seg := range segments {
		last := i == len(segments)-1
		switch {
		case isDoubleDotSegment(seg):
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			if last {
				out = append(out, "")
			}
		case isSingleDotSegment(seg):
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}

	return "/" + strings.Join(out, "/")
}

func isSingleDotSegment(seg string) bool {
	return seg == "." || strings.EqualFold(seg, "%2e")
}

func isDoubleDotSegment(seg string) bool {
	switch strings.ToLower(seg) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

// ConstructURLWithQueryParams appends the parts of a redirect URL to baseURL
// as query parameters in the fixed order prefix, host, port, resources.
// Absent port and resources are omitted. Existing query parameters, the path,
// and the fragment of baseURL are preserved. http(s) bases must carry a host;
// other absolute URLs are accepted as they are.
func ConstructURLWithQueryParams(baseURL string, parts models.URLParts) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() || (isWebScheme(u.Scheme) && u.Host == "") {
		return "", fmt.Errorf("%w: %s", ErrInvalidBaseURL, baseURL)
	}

	if u.Path == "" && isWebScheme(u.Scheme) {
		u.Path = "/"
	}

	params := make([]string, 0, 4)
	params = append(params, encodeParam(QueryParamPrefix, parts.Prefix), encodeParam(QueryParamHost, parts.Host))
	if parts.HasPort() {
		params = append(params, encodeParam(QueryParamPort, parts.Port))
	}
	if parts.HasResources() {
		params = append(params, encodeParam(QueryParamResources, parts.Resources))
	}

	query := strings.Join(params, "&")
	if u.RawQuery != "" {
		query = u.RawQuery + "&" + query
	}
	u.RawQuery = query
	u.ForceQuery = false

	return u.String(), nil
}

// HasQueryParameter reports whether raw carries the query parameter name.
func HasQueryParameter(raw, name string) (bool, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	return u.Query().Has(name), nil
}

// ExtractURLParts reads the redirect parts back from a URL produced by
// [ConstructURLWithQueryParams]. The prefix and host parameters are required.
func ExtractURLParts(raw string) (models.URLParts, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return models.URLParts{}, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	return URLPartsFromQuery(u.Query())
}

// URLPartsFromQuery reads the redirect parts from parsed query values.
func URLPartsFromQuery(q url.Values) (models.URLParts, error) {
	parts := models.URLParts{
		Prefix:    q.Get(QueryParamPrefix),
		Host:      q.Get(QueryParamHost),
		Port:      q.Get(QueryParamPort),
		Resources: q.Get(QueryParamResources),
	}

	if parts.Prefix == "" || parts.Host == "" {
		return models.URLParts{}, fmt.Errorf("%w: missing %s or %s parameter", ErrInvalidURL, QueryParamPrefix, QueryParamHost)
	}

	return parts, nil
}

// BuildRedirectURL reassembles the redirect URL described by parts:
// prefix://host[:port]/resources with "." in resources turned back into "/".
func BuildRedirectURL(parts models.URLParts) (string, error) {
	if parts.Prefix != "http" && parts.Prefix != "https" {
		return "", fmt.Errorf("%w: unsupported prefix %q", ErrInvalidURL, parts.Prefix)
	}
	if parts.Host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidURL)
	}

	host := parts.Host
	if parts.HasPort() {
		host += ":" + parts.Port
	}

	u := &url.URL{Scheme: parts.Prefix, Host: host, Path: "/"}
	if parts.HasResources() {
		escaped := "/" + strings.ReplaceAll(parts.Resources, ".", "/")
		path, err := url.PathUnescape(escaped)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidURL, parts.Resources)
		}
		u.Path, u.RawPath = path, escaped
	}

	return u.String(), nil
}

func isWebScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

func encodeParam(name, value string) string {
	return url.QueryEscape(name) + "=" + url.QueryEscape(value)
}
