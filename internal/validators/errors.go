// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidEmail is returned for an empty or malformed email.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrEmptyPassword is returned for an empty password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrEmptyRefreshToken is returned for an empty refresh token.
	ErrEmptyRefreshToken = errors.New("empty refresh token")

	// ErrUnknownField is returned when a field name does not apply to the
	// validated type.
	ErrUnknownField = errors.New("unknown field for validation")
)
