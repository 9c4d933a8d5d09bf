package service

import (
	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	CampaignService CampaignService
	ItemService     ItemService
	AppInfoService  AppInfoService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, repos.ProfileRepository, cfg.App, logger),
		CampaignService: NewCampaignService(repos.CampaignRepository, repos.MembershipRepository, repos.ProfileRepository, logger),
		ItemService:     NewItemService(repos.ItemRepository, repos.MembershipRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
