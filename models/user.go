package models

import "time"

// User represents a registered account identity.
// It contains identity attributes and the stored credential artifact.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user, assigned once at
	// registration and never reused. It doubles as the value of the session
	// cookie, so it must be unguessable (UUIDv7).
	UserID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique, case-preserved identity key used for lookup.
	// Uniqueness is enforced by the users table, not by application code.
	Email string `json:"email"`

	// Credential stores the password artifact in the form
	// hex(salt) + "." + hex(derivedKey). Never the plaintext password.
	// Excluded from JSON so it cannot leak through a response by accident;
	// PublicView is the only representation handed to callers.
	Credential string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicView converts the user into the whitelisted representation served
// over HTTP. Fields are copied explicitly so that a new column added to the
// users table has no path into a response.
func (u User) PublicView() UserView {
	return UserView{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
