// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport used to talk to the auth
// session backend.
//
// The primary abstraction is [Transport]: one method per HTTP verb the client
// needs, each performing a single request and returning the raw [Response].
// Every failure is reported as a [*TransportError] whose message names the
// operation and the URL; non-2xx statuses are additionally mapped to the
// sentinel values in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs single-attempt HTTP calls against absolute URLs.
// There is no retry and no backoff; a failed call fails fast.
type Transport interface {
	// FetchData issues a GET request to url. On failure the error message is
	// "Failed to fetch data from {url}: {cause}".
	FetchData(ctx context.Context, url string) (*Response, error)

	// PatchData issues a PATCH request to url with body encoded as JSON. On
	// failure the error message is "Failed to patch data to {url}: {cause}".
	PatchData(ctx context.Context, url string, body any) (*Response, error)

	// DeleteData issues a DELETE request to url. On failure the error message
	// is "Failed to delete data from {url}: {cause}".
	DeleteData(ctx context.Context, url string) (*Response, error)
}
