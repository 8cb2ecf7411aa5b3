package service

import (
	"github.com/MKhiriev/go-auth-session-client/internal/utils"
)

type urlService struct {
	loginURL    string
	registerURL string
}

// NewURLService constructs a [URLService] bound to the given login and
// register page URLs.
func NewURLService(loginURL, registerURL string) URLService {
	return &urlService{loginURL: loginURL, registerURL: registerURL}
}

func (u *urlService) GenerateLoginURL(redirectURL string) (string, error) {
	return u.GenerateURL(u.loginURL, redirectURL)
}

func (u *urlService) GenerateRegisterURL(redirectURL string) (string, error) {
	return u.GenerateURL(u.registerURL, redirectURL)
}

func (u *urlService) GenerateURL(baseURL, redirectURL string) (string, error) {
	parts, err := utils.ParseURL(redirectURL)
	if err != nil {
		return "", err
	}

	return utils.ConstructURLWithQueryParams(baseURL, parts)
}
