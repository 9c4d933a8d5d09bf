package models

// Profile is the denormalized, publicly visible snapshot of a user account.
// It mirrors the name/avatar fields of [User] so that other members of a
// campaign can render the user without access to the accounts table.
//
// The profile row is a read-optimized projection: the users table is
// authoritative and profile writes are best-effort (see the auth service).
type Profile struct {
	// ID matches the ID of the mirrored [User].
	ID string `json:"id"`

	// Email of the mirrored user.
	Email string `json:"email"`

	// Name is the display name at the time of the last successful mirror
	// write. May lag behind the authoritative record.
	Name string `json:"name"`

	// Avatar identifier, one of [Avatars].
	Avatar string `json:"avatar,omitempty"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
