package stub

import "errors"

var (
	// ErrInvalidDataProvided is returned for requests missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a login password does not match.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidID is returned for path IDs that are not base-10 integers.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingRedirect is returned by login without the redirect parameters.
	ErrMissingRedirect = errors.New("missing redirect parameters")
)
