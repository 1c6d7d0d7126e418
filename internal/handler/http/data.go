package http

import (
	"net/mail"

	"github.com/avoronin/go-user-gate/models"
)

// minPasswordLength is the shortest password accepted at sign-up and
// sign-in. Enforced at the transport boundary so the service layer never
// spends a KDF slot on a password that could not have been registered.
const minPasswordLength = 8

// validateSignUpRequest checks a sign-up payload before it reaches the
// service. Validation errors carry user-facing messages and always map to
// HTTP 400.
func validateSignUpRequest(req models.SignUpRequest) error {
	if req.Name == "" {
		return ErrNameIsRequired
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

// validateSignInRequest checks a sign-in payload before it reaches the
// service.
func validateSignInRequest(req models.SignInRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	return validatePassword(req.Password)
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
