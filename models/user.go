package models

// User is an account of the backend stub. Password is accepted on
// registration and never serialized back; PasswordHash stays server-side.
type User struct {
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"-"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Device   string `json:"device"`
}

// LoginResponse carries the redirect URL the caller is sent to after a
// successful login, extended with sessionId and userId query parameters.
type LoginResponse struct {
	RedirectURL string `json:"redirectUrl"`
}
