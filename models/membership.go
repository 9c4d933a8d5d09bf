package models

// Role is the role a user holds within one campaign.
type Role string

const (
	// RoleMaster is the game-master role: full read access and exclusive
	// write access to campaign items.
	RoleMaster Role = "MASTER"

	// RolePlayer is the regular member role: read access limited by the
	// per-item visibility gate.
	RolePlayer Role = "PLAYER"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleMaster || r == RolePlayer
}

// Membership grants a user a role within one campaign. The (UserID,
// CampaignID) pair is unique; attempting to insert a second row for the same
// pair is rejected by the database and surfaced as an "already a member"
// error.
type Membership struct {
	// UserID of the member.
	UserID string `json:"userId"`

	// CampaignID of the campaign the membership belongs to.
	CampaignID string `json:"campaignId"`

	// Role of the member within the campaign.
	Role Role `json:"role"`

	// Profile is an optional denormalized snapshot of the member's public
	// profile, populated by member-listing reads. Nil when the user has no
	// profile row; callers must handle the absence.
	Profile *Profile `json:"profile,omitempty"`
}

// TableName returns the name of the database table
// associated with the Membership model.
func (m Membership) TableName() string {
	return "memberships"
}
