package models

// UserView is the public representation of a [User] returned by the HTTP
// layer. It deliberately carries only whitelisted fields; the stored
// credential has no corresponding field here at all.
type UserView struct {
	// UserID mirrors User.UserID.
	UserID string `json:"id"`

	// Name mirrors User.Name.
	Name string `json:"name"`

	// Email mirrors User.Email.
	Email string `json:"email"`
}
