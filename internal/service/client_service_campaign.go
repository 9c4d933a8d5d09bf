package service

import (
	"context"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
)

type clientCampaignService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientCampaignService creates the client-side campaign service backed
// by the server adapter.
func NewClientCampaignService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientCampaignService {
	return &clientCampaignService{adapter: serverAdapter, logger: log}
}

func (c *clientCampaignService) CreateCampaign(ctx context.Context, name, description string) (models.Campaign, error) {
	campaign, err := c.adapter.CreateCampaign(ctx, name, description)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("create campaign: %w", mapAdapterError(err))
	}
	return campaign, nil
}

func (c *clientCampaignService) Campaigns(ctx context.Context) (models.CampaignList, error) {
	list, err := c.adapter.GetCampaigns(ctx)
	if err != nil {
		return models.CampaignList{}, fmt.Errorf("fetch campaigns: %w", mapAdapterError(err))
	}
	return list, nil
}

func (c *clientCampaignService) Campaign(ctx context.Context, campaignID string) (models.Campaign, error) {
	campaign, err := c.adapter.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("fetch campaign: %w", mapAdapterError(err))
	}
	return campaign, nil
}

func (c *clientCampaignService) UpdateCampaign(ctx context.Context, campaignID string, patch models.CampaignPatch) (models.Campaign, error) {
	campaign, err := c.adapter.UpdateCampaign(ctx, campaignID, patch)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("update campaign: %w", mapAdapterError(err))
	}
	return campaign, nil
}

func (c *clientCampaignService) DeleteCampaign(ctx context.Context, campaignID string) error {
	if err := c.adapter.DeleteCampaign(ctx, campaignID); err != nil {
		return fmt.Errorf("delete campaign: %w", mapAdapterError(err))
	}
	return nil
}

func (c *clientCampaignService) JoinCampaign(ctx context.Context, inviteCode string) (models.Campaign, error) {
	campaign, err := c.adapter.JoinCampaign(ctx, inviteCode)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("join campaign: %w", mapAdapterError(err))
	}
	return campaign, nil
}

// Members degrades to an empty slice on failure so the member pane renders
// alongside whatever else the campaign view managed to load.
func (c *clientCampaignService) Members(ctx context.Context, campaignID string) []models.Membership {
	members, err := c.adapter.ListMembers(ctx, campaignID)
	if err != nil {
		c.logger.Err(err).
			Str("func", "clientCampaignService.Members").
			Str("campaign_id", campaignID).
			Msg("failed to fetch campaign members")
		return []models.Membership{}
	}
	return members
}

func (c *clientCampaignService) MemberCount(ctx context.Context, campaignID string) int {
	count, err := c.adapter.CountMembers(ctx, campaignID)
	if err != nil {
		c.logger.Err(err).
			Str("func", "clientCampaignService.MemberCount").
			Str("campaign_id", campaignID).
			Msg("failed to fetch member count")
		return 0
	}
	return count
}

func (c *clientCampaignService) RemoveMember(ctx context.Context, campaignID, memberID string) error {
	if err := c.adapter.RemoveMember(ctx, campaignID, memberID); err != nil {
		return fmt.Errorf("remove member: %w", mapAdapterError(err))
	}
	return nil
}
