package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the statuses the sessions backend answers with.
var (
	// ErrBadRequest is a 400, sent for malformed session or user IDs.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is a 401.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrRefreshTokenRejected is a 401 on a refresh: the token is not the
	// current one for the session.
	ErrRefreshTokenRejected = errors.New("refresh token rejected")
	// ErrNotFound is a 404 for an unknown session or user.
	ErrNotFound = errors.New("not found")
	// ErrServerError is any 5xx.
	ErrServerError = errors.New("server error")
	// ErrUnexpectedStatus is any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Operation names used in [TransportError] messages.
const (
	OpFetch  = "fetch"
	OpPatch  = "patch"
	OpDelete = "delete"
)

// TransportError annotates a failed call with the operation and target URL.
// The cause is kept for errors.Is / errors.As.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	preposition := "from"
	if e.Op == OpPatch {
		preposition = "to"
	}

	return fmt.Sprintf("Failed to %s data %s %s: %v", e.Op, preposition, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
