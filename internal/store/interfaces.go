package store

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

// UserRepository persists and looks up authoritative account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateUserMeta(ctx context.Context, id, name, avatar string) error
}

// ProfileRepository persists the denormalized public profile projection.
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile models.Profile) error
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	GetProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	GetCampaignByID(ctx context.Context, id string) (models.Campaign, error)
	GetCampaignByInviteCode(ctx context.Context, code string) (models.Campaign, error)
	GetCampaignsByIDs(ctx context.Context, ids []string) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch models.CampaignPatch) error
	DeleteCampaign(ctx context.Context, id string) error
}

// MembershipRepository persists the (user, campaign, role) relation.
type MembershipRepository interface {
	InsertMembership(ctx context.Context, membership models.Membership) error
	GetMembership(ctx context.Context, userID, campaignID string) (models.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error)
	ListMembershipsByCampaign(ctx context.Context, campaignID string) ([]models.Membership, error)
	DeleteMembership(ctx context.Context, campaignID, userID string) error
	CountMemberships(ctx context.Context, campaignID string) (int, error)
}

// ItemRepository persists campaign items. One implementation serves all five
// kinds; the kind selects the backing table and its extra columns.
type ItemRepository interface {
	ListItems(ctx context.Context, kind models.ItemKind, campaignID string) ([]models.Item, error)
	GetItem(ctx context.Context, kind models.ItemKind, campaignID, id string) (models.Item, error)
	SaveItem(ctx context.Context, kind models.ItemKind, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, kind models.ItemKind, campaignID, id string) error
}
