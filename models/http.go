package models

// SignUpRequest is the JSON body of POST /auth/signup.
type SignUpRequest struct {
	// Name is the display name for the new account. Required.
	Name string `json:"name"`

	// Email is the unique identity key for the new account. Required.
	Email string `json:"email"`

	// Password is the plaintext password. It exists only for the lifetime
	// of the request and is never persisted or logged.
	Password string `json:"password"`
}

// SignInRequest is the JSON body of POST /auth/signin.
type SignInRequest struct {
	// Email identifies the account to authenticate.
	Email string `json:"email"`

	// Password is the plaintext password to verify.
	Password string `json:"password"`
}
