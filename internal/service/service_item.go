package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/validators"
	"github.com/lmiranda/quest-keeper/models"
)

// itemService is the concrete implementation of ItemService. One service
// instance handles all five item kinds; membership and role checks gate
// every operation.
type itemService struct {
	itemRepository       store.ItemRepository
	membershipRepository store.MembershipRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, membershipRepository store.MembershipRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository:       itemRepository,
		membershipRepository: membershipRepository,
		validator:            validators.NewItemValidator(),
		logger:               logger,
	}
}

// ListItems returns the campaign's items of one kind. The master sees every
// item; players see only items marked visible to players.
func (s *itemService) ListItems(ctx context.Context, userID string, kind models.ItemKind, campaignID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return nil, ErrValidationUnknownKind
	}

	membership, err := s.requireMembership(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepository.ListItems(ctx, kind, campaignID)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Str("campaign_id", campaignID).Msg("item listing failed")
		return nil, fmt.Errorf("item listing failed: %w", err)
	}

	if membership.Role == models.RoleMaster {
		return items, nil
	}

	visible := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.IsVisibleToPlayers {
			visible = append(visible, item)
		}
	}

	return visible, nil
}

// SaveItem creates or updates an item. Master only. An item without an ID is
// inserted; an item carrying one is upserted keyed by it, which also serves
// the visibility toggle (a full save with the flag flipped). The upsert never
// crosses campaigns: an ID that exists under another campaign comes back as
// not found.
func (s *itemService) SaveItem(ctx context.Context, userID string, kind models.ItemKind, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.validateItem(ctx, kind, item); err != nil {
		return models.Item{}, err
	}

	if err := s.requireMaster(ctx, userID, item.CampaignID); err != nil {
		return models.Item{}, err
	}

	if kind == models.KindLocation && item.ParentID != "" {
		if _, err := s.itemRepository.GetItem(ctx, kind, item.CampaignID, item.ParentID); err != nil {
			if errors.Is(err, store.ErrItemNotFound) {
				return models.Item{}, ErrValidationParentNotFound
			}
			log.Err(err).Str("campaign_id", item.CampaignID).Str("parent_id", item.ParentID).Msg("parent location lookup failed")
			return models.Item{}, fmt.Errorf("parent location lookup failed: %w", err)
		}
	}

	saved, err := s.itemRepository.SaveItem(ctx, kind, item)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Str("campaign_id", item.CampaignID).Msg("item save failed")
		return models.Item{}, fmt.Errorf("item save failed: %w", err)
	}

	return saved, nil
}

// DeleteItem removes one item of the given campaign. Master only.
func (s *itemService) DeleteItem(ctx context.Context, userID string, kind models.ItemKind, campaignID, itemID string) error {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return ErrValidationUnknownKind
	}

	if err := s.requireMaster(ctx, userID, campaignID); err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, kind, campaignID, itemID); err != nil {
		log.Err(err).Str("kind", string(kind)).Str("item_id", itemID).Msg("item delete failed")
		return fmt.Errorf("item delete failed: %w", err)
	}

	return nil
}

func (s *itemService) requireMembership(ctx context.Context, userID, campaignID string) (models.Membership, error) {
	membership, err := s.membershipRepository.GetMembership(ctx, userID, campaignID)
	if err != nil {
		return models.Membership{}, ErrAccessDenied
	}

	return membership, nil
}

func (s *itemService) requireMaster(ctx context.Context, userID, campaignID string) error {
	membership, err := s.requireMembership(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if membership.Role != models.RoleMaster {
		return ErrAccessDenied
	}

	return nil
}
