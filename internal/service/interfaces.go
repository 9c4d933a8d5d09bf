package service

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID, name, avatar string) (models.User, error)
}

type CampaignService interface {
	CreateCampaign(ctx context.Context, ownerID, name, description string) (models.Campaign, error)
	GetCampaigns(ctx context.Context, userID string) (models.CampaignList, error)
	GetCampaign(ctx context.Context, userID, campaignID string) (models.Campaign, error)
	UpdateCampaign(ctx context.Context, userID, campaignID string, patch models.CampaignPatch) (models.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, campaignID string) error
	JoinCampaign(ctx context.Context, userID, inviteCode string) (models.Campaign, error)
	ListMembers(ctx context.Context, userID, campaignID string) ([]models.Membership, error)
	CountMembers(ctx context.Context, userID, campaignID string) (int, error)
	RemoveMember(ctx context.Context, requesterID, campaignID, memberID string) error
}

type ItemService interface {
	ListItems(ctx context.Context, userID string, kind models.ItemKind, campaignID string) ([]models.Item, error)
	SaveItem(ctx context.Context, userID string, kind models.ItemKind, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, userID string, kind models.ItemKind, campaignID, itemID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
