package service

import "errors"

// Operation sentinels matched by errors.Is on a [*SessionError].
var (
	ErrGetSession         = errors.New("get session failed")
	ErrGetUserSessions    = errors.New("get user sessions failed")
	ErrRefreshSession     = errors.New("refresh session failed")
	ErrRevokeSession      = errors.New("revoke session failed")
	ErrRevokeUserSessions = errors.New("revoke user sessions failed")
)

// SessionError is returned by every [SessionService] method. Its message is
// the fixed, operation-specific text; Op and Err stay matchable via
// errors.Is and errors.As.
type SessionError struct {
	Op  error
	Msg string
	Err error
}

func (e *SessionError) Error() string {
	return e.Msg
}

func (e *SessionError) Unwrap() []error {
	return []error{e.Op, e.Err}
}
