package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmiranda/quest-keeper/internal/app"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/utils"
	"github.com/lmiranda/quest-keeper/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	kind := models.ItemKind(chi.URLParam(r, "kind"))

	items, err := h.services.ItemService.ListItems(ctx, userID, kind, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Str("kind", string(kind)).Msg("item listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.saveItem").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// the campaign in the path is authoritative
	item.CampaignID = chi.URLParam(r, "campaignID")
	kind := models.ItemKind(chi.URLParam(r, "kind"))

	saved, err := h.services.ItemService.SaveItem(ctx, userID, kind, item)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveItem").Str("kind", string(kind)).Msg("item save failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	status := http.StatusCreated
	if item.ID != "" {
		status = http.StatusOK
	}
	utils.WriteJSON(w, saved, status)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	kind := models.ItemKind(chi.URLParam(r, "kind"))
	itemID := chi.URLParam(r, "itemID")

	if err := h.services.ItemService.DeleteItem(ctx, userID, kind, campaignID, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrAccessDenied):
			http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		case errors.Is(err, store.ErrItemNotFound):
			http.Error(w, app.MsgItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteItem").Str("kind", string(kind)).Msg("item delete failed")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
