// Package adapter provides transport-layer abstractions for communicating
// with the quest-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples client-side
// services from the underlying protocol. The package currently ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// quest-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login, or when restoring a saved
	// session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success the bearer
	// token from the Authorization response header is stored via SetToken
	// and the created user record is returned.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success the bearer
	// token from the Authorization response header is stored via SetToken
	// and the server-side user record is returned.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CurrentUser fetches the authenticated account with display fallbacks
	// applied. Requires a valid bearer token.
	CurrentUser(ctx context.Context) (models.User, error)

	// UpdateProfile changes the display name and avatar of the
	// authenticated user and returns the updated record.
	UpdateProfile(ctx context.Context, name, avatar string) (models.User, error)

	// CreateCampaign creates a campaign owned by the authenticated user and
	// returns it, invite code included.
	CreateCampaign(ctx context.Context, name, description string) (models.Campaign, error)

	// GetCampaigns returns the authenticated user's campaigns partitioned
	// by role.
	GetCampaigns(ctx context.Context) (models.CampaignList, error)

	// GetCampaign returns one campaign the authenticated user belongs to.
	GetCampaign(ctx context.Context, campaignID string) (models.Campaign, error)

	// UpdateCampaign applies a sparse patch to a campaign the authenticated
	// user masters and returns the updated record.
	UpdateCampaign(ctx context.Context, campaignID string, patch models.CampaignPatch) (models.Campaign, error)

	// DeleteCampaign removes a campaign the authenticated user masters.
	DeleteCampaign(ctx context.Context, campaignID string) error

	// JoinCampaign enrolls the authenticated user as a player of the
	// campaign matching the invite code. Returns [ErrConflict] (wrapped)
	// when the user already belongs to it.
	JoinCampaign(ctx context.Context, inviteCode string) (models.Campaign, error)

	// ListMembers returns the campaign's memberships with public profiles
	// attached where available.
	ListMembers(ctx context.Context, campaignID string) ([]models.Membership, error)

	// CountMembers returns the number of members of the campaign.
	CountMembers(ctx context.Context, campaignID string) (int, error)

	// RemoveMember removes a player from the campaign. Mirrors the
	// server-side rules: masters may remove any player, players only
	// themselves.
	RemoveMember(ctx context.Context, campaignID, memberID string) error

	// ListItems returns the campaign's items of one kind, already filtered
	// by the server according to the caller's role.
	ListItems(ctx context.Context, campaignID string, kind models.ItemKind) ([]models.Item, error)

	// SaveItem creates or updates an item in the campaign and returns the
	// stored record.
	SaveItem(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error)

	// DeleteItem removes one item from the campaign.
	DeleteItem(ctx context.Context, campaignID string, kind models.ItemKind, itemID string) error

	// GetServerVersion returns the server build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
