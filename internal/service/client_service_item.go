package service

import (
	"context"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
)

type clientItemService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientItemService creates the client-side item service backed by the
// server adapter.
func NewClientItemService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientItemService {
	return &clientItemService{adapter: serverAdapter, logger: log}
}

// Items degrades to an empty slice on failure. The campaign view fetches all
// five kinds at once; one broken collection must not blank the other four.
func (s *clientItemService) Items(ctx context.Context, campaignID string, kind models.ItemKind) []models.Item {
	items, err := s.adapter.ListItems(ctx, campaignID, kind)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientItemService.Items").
			Str("campaign_id", campaignID).
			Str("kind", string(kind)).
			Msg("failed to fetch campaign items")
		return []models.Item{}
	}
	return items
}

func (s *clientItemService) SaveItem(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error) {
	saved, err := s.adapter.SaveItem(ctx, campaignID, kind, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("save item: %w", mapAdapterError(err))
	}
	return saved, nil
}

// ToggleVisibility is a full-record save with the flag flipped, matching how
// the server treats every item write.
func (s *clientItemService) ToggleVisibility(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error) {
	item.IsVisibleToPlayers = !item.IsVisibleToPlayers
	return s.SaveItem(ctx, campaignID, kind, item)
}

func (s *clientItemService) DeleteItem(ctx context.Context, campaignID string, kind models.ItemKind, itemID string) error {
	if err := s.adapter.DeleteItem(ctx, campaignID, kind, itemID); err != nil {
		return fmt.Errorf("delete item: %w", mapAdapterError(err))
	}
	return nil
}
