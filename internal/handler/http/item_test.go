package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/models"
)

func TestListItems_Success(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context, userID string, kind models.ItemKind, campaignID string) ([]models.Item, error) {
			assert.Equal(t, models.KindCharacter, kind)
			assert.Equal(t, "c-1", campaignID)
			return []models.Item{{ID: "i-1", Name: "Kael"}}, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := authedRequest(http.MethodGet, "/api/campaigns/c-1/items/characters", "", "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "characters"})
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kael", got[0].Name)
}

func TestListItems_UnknownKind(t *testing.T) {
	items := &mockItemService{
		listItemsFn: func(_ context.Context, _ string, _ models.ItemKind, _ string) ([]models.Item, error) {
			return nil, service.ErrValidationUnknownKind
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := authedRequest(http.MethodGet, "/api/campaigns/c-1/items/spells", "", "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "spells"})
	rec := httptest.NewRecorder()

	h.listItems(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveItem_CreateUsesCampaignFromPath(t *testing.T) {
	items := &mockItemService{
		saveItemFn: func(_ context.Context, userID string, kind models.ItemKind, item models.Item) (models.Item, error) {
			// path wins over whatever campaign the body claims
			assert.Equal(t, "c-1", item.CampaignID)
			item.ID = "i-1"
			return item, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.Item{Name: "Goblin", CampaignID: "c-other", Difficulty: "Fácil"})
	req := authedRequest(http.MethodPost, "/api/campaigns/c-1/items/monsters", body, "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "monsters"})
	rec := httptest.NewRecorder()

	h.saveItem(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "i-1", got.ID)
}

func TestSaveItem_UpdateReturnsOK(t *testing.T) {
	items := &mockItemService{
		saveItemFn: func(_ context.Context, _ string, _ models.ItemKind, item models.Item) (models.Item, error) {
			return item, nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.Item{ID: "i-1", Name: "Goblin Chefe"})
	req := authedRequest(http.MethodPost, "/api/campaigns/c-1/items/monsters", body, "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "monsters"})
	rec := httptest.NewRecorder()

	h.saveItem(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveItem_PlayerDenied(t *testing.T) {
	items := &mockItemService{
		saveItemFn: func(_ context.Context, _ string, _ models.ItemKind, _ models.Item) (models.Item, error) {
			return models.Item{}, service.ErrAccessDenied
		},
	}

	h := newTestHandler(t, nil, nil, items)
	body := jsonBody(t, models.Item{Name: "Goblin"})
	req := authedRequest(http.MethodPost, "/api/campaigns/c-1/items/monsters", body, "p-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "monsters"})
	rec := httptest.NewRecorder()

	h.saveItem(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteItem_Success(t *testing.T) {
	items := &mockItemService{
		deleteItemFn: func(_ context.Context, userID string, kind models.ItemKind, campaignID, itemID string) error {
			assert.Equal(t, models.KindStory, kind)
			assert.Equal(t, "i-1", itemID)
			return nil
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := authedRequest(http.MethodDelete, "/api/campaigns/c-1/items/stories/i-1", "", "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "stories", "itemID": "i-1"})
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteItem_NotFound(t *testing.T) {
	items := &mockItemService{
		deleteItemFn: func(_ context.Context, _ string, _ models.ItemKind, _, _ string) error {
			return store.ErrItemNotFound
		},
	}

	h := newTestHandler(t, nil, nil, items)
	req := authedRequest(http.MethodDelete, "/api/campaigns/c-1/items/stories/gone", "", "u-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "kind": "stories", "itemID": "gone"})
	rec := httptest.NewRecorder()

	h.deleteItem(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
