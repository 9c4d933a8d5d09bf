package models

// Campaign status values. Stored as plain strings; the UI surfaces them
// verbatim.
const (
	StatusActive   = "Ativa"
	StatusFinished = "Finalizada"
	StatusPaused   = "Pausada"
)

// InviteCodeLength is the length of a campaign invite code. Codes are
// uppercase alphanumeric and generated at creation time.
const InviteCodeLength = 6

// Campaign is a tabletop-RPG game instance owned by one creator and joinable
// by others via its invite code.
type Campaign struct {
	// ID is the opaque unique identifier assigned by the persistence layer.
	ID string `json:"id"`

	// Name of the campaign. Required.
	Name string `json:"name"`

	// Description is an optional free-form summary.
	Description string `json:"description,omitempty"`

	// InviteCode is the 6-character uppercase alphanumeric code uniquely
	// identifying the campaign for join purposes.
	InviteCode string `json:"inviteCode"`

	// OwnerID is the user who created the campaign. The owner always holds
	// a MASTER membership created together with the campaign.
	OwnerID string `json:"ownerId"`

	// ImageURL is an optional cover image.
	ImageURL string `json:"imageUrl,omitempty"`

	// Status is one of [StatusActive], [StatusFinished], [StatusPaused].
	// Defaults to [StatusActive].
	Status string `json:"status"`

	// CreatedAt is the creation timestamp, serialized as epoch milliseconds.
	CreatedAt EpochTime `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Campaign model.
func (c Campaign) TableName() string {
	return "campaigns"
}

// CampaignPatch is a sparse update to a campaign. Nil fields are left
// untouched. Description and ImageURL are applied even when they point at an
// empty string, so a patch can clear them; Name and Status are skipped when
// empty (clearing a campaign name is never intended).
type CampaignPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch carries no applicable change.
func (p CampaignPatch) IsEmpty() bool {
	nameSet := p.Name != nil && *p.Name != ""
	statusSet := p.Status != nil && *p.Status != ""
	return !nameSet && p.Description == nil && p.ImageURL == nil && !statusSet
}

// CampaignList is the partition of a user's campaigns by their role in each.
// Every campaign the user belongs to appears in exactly one of the two sets.
type CampaignList struct {
	// Master holds the campaigns where the user's membership role is MASTER.
	Master []Campaign `json:"master"`

	// Player holds the campaigns where the user's membership role is PLAYER.
	Player []Campaign `json:"player"`
}
