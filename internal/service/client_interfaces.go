package service

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management
// and local session persistence. Implementations talk to the server through
// the adapter and keep the SQLite session store in sync, publishing bus
// notifications whenever the signed-in user changes.
type ClientAuthService interface {
	// SignUp creates a new account on the server, persists the resulting
	// session locally, and announces the session change.
	// Returns the created user or an error if registration or the local
	// save fails.
	SignUp(ctx context.Context, email, password, name string) (models.User, error)

	// SignIn authenticates against the server, persists the resulting
	// session locally, and announces the session change.
	// Returns the signed-in user or an error if authentication fails.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// SignOut clears the local session and the adapter token, then
	// announces the session change. Safe to call when no session exists.
	SignOut(ctx context.Context) error

	// RestoreSession loads the previously saved session from the local
	// store and primes the adapter with its token.
	// Returns store.ErrLocalSessionNotFound when no session was saved.
	RestoreSession(ctx context.Context) (models.Session, error)

	// CurrentUser fetches the authenticated account from the server and
	// refreshes the local session snapshot with it.
	CurrentUser(ctx context.Context) (models.User, error)

	// UpdateProfile writes the new display name and avatar to the server,
	// refreshes the local session snapshot, and announces both the session
	// change and the profile update.
	UpdateProfile(ctx context.Context, name, avatar string) (models.User, error)

	// ServerVersion returns the server's build version, or an empty string
	// when the server could not be reached.
	ServerVersion(ctx context.Context) string
}

// ClientCampaignService defines the client-side contract for campaign
// lifecycle operations. List-shaped reads degrade to empty results on
// failure so a single broken fetch never takes down a whole screen; writes
// and single-record reads report real errors.
type ClientCampaignService interface {
	// CreateCampaign creates a campaign mastered by the signed-in user.
	CreateCampaign(ctx context.Context, name, description string) (models.Campaign, error)

	// Campaigns returns the signed-in user's campaigns partitioned by role.
	Campaigns(ctx context.Context) (models.CampaignList, error)

	// Campaign returns one campaign the signed-in user belongs to.
	Campaign(ctx context.Context, campaignID string) (models.Campaign, error)

	// UpdateCampaign applies a sparse patch and returns the fresh record.
	UpdateCampaign(ctx context.Context, campaignID string, patch models.CampaignPatch) (models.Campaign, error)

	// DeleteCampaign removes a campaign the signed-in user masters.
	DeleteCampaign(ctx context.Context, campaignID string) error

	// JoinCampaign enrolls the signed-in user as a player via invite code.
	JoinCampaign(ctx context.Context, inviteCode string) (models.Campaign, error)

	// Members returns the campaign's member list. A fetch failure is logged
	// and surfaces as an empty slice.
	Members(ctx context.Context, campaignID string) []models.Membership

	// MemberCount returns the number of members of the campaign, or 0 when
	// the count could not be fetched.
	MemberCount(ctx context.Context, campaignID string) int

	// RemoveMember removes a player from the campaign.
	RemoveMember(ctx context.Context, campaignID, memberID string) error
}

// ClientItemService defines the client-side contract for campaign item CRUD
// across the five kinds.
type ClientItemService interface {
	// Items returns the campaign's items of one kind, already filtered by
	// the server for the caller's role. A fetch failure is logged and
	// surfaces as an empty slice.
	Items(ctx context.Context, campaignID string, kind models.ItemKind) []models.Item

	// SaveItem creates or updates an item and returns the stored record.
	SaveItem(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error)

	// ToggleVisibility re-saves the full item with the player-visibility
	// flag flipped and returns the stored record.
	ToggleVisibility(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error)

	// DeleteItem removes one item from the campaign.
	DeleteItem(ctx context.Context, campaignID string, kind models.ItemKind, itemID string) error
}
