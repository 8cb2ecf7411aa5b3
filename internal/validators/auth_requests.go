package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-session-client/models"
)

// Field names accepted by [AuthRequestValidator.Validate].
const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRefreshToken = "refresh_token"
)

// AuthRequestValidator validates the register, login and refresh payloads.
// Both value and pointer forms are accepted.
type AuthRequestValidator struct {
}

// NewAuthRequestValidator constructs an [AuthRequestValidator].
func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

// Validate implements [Validator]. It returns [ErrUnsupportedType] for any
// other type.
func (v *AuthRequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.User:
		return v.validateCredentials(value.Email, value.Password, fields...)

	case models.LoginRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(value.Email, value.Password, fields...)

	case models.RefreshRequest:
		return v.validateRefreshRequest(value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateCredentials(email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateRefreshRequest(req models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		if f != FieldRefreshToken {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if strings.TrimSpace(req.RefreshToken) == "" {
			return ErrEmptyRefreshToken
		}
	}

	return nil
}

// isValidEmail accepts local@domain with non-empty parts and no whitespace.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t\r\n") {
		return false
	}

	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && domain != "" && !strings.Contains(domain, "@")
}
