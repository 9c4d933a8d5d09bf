package models

import "time"

// DefaultAvatar is the avatar identifier assigned to every account that has
// not chosen one yet. It must be a member of [Avatars].
const DefaultAvatar = "Shield"

// Avatars is the fixed set of avatar icon identifiers a user may pick from.
// The values are opaque to the server; the presentation layer maps them to
// actual icons.
var Avatars = []string{
	"Shield", "Sword", "Wand2", "Skull", "BookOpen", "Sparkles",
	"Map", "Compass", "Flame", "Ghost", "Moon", "Sun",
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, assigned by the
	// persistence layer on creation.
	ID string `json:"id"`

	// Email is the unique sign-in identifier of the account.
	Email string `json:"email"`

	// Name is the display name of the user. When empty it falls back to the
	// local part of Email.
	Name string `json:"name"`

	// Avatar is one of the identifiers in [Avatars]. Defaults to
	// [DefaultAvatar].
	Avatar string `json:"avatar,omitempty"`

	// Password carries the plain-text password only on sign-up and sign-in
	// requests. It is never persisted and never returned in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password. It is used only at
	// the persistence layer and is not exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FallbackName returns the display name to show for the user: the explicit
// name, then the local part of the email, then "Aventureiro".
func (u User) FallbackName() string {
	if u.Name != "" {
		return u.Name
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	if u.Email != "" {
		return u.Email
	}
	return "Aventureiro"
}
