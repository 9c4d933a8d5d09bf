package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lmiranda/quest-keeper/internal/app"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/utils"
)

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	members, err := h.services.CampaignService.ListMembers(ctx, userID, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMembers").Msg("member listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

func (h *Handler) countMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	count, err := h.services.CampaignService.CountMembers(ctx, userID, campaignID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.countMembers").Msg("member count failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int{"count": count}, http.StatusOK)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	memberID := chi.URLParam(r, "memberID")

	if err := h.services.CampaignService.RemoveMember(ctx, userID, campaignID, memberID); err != nil {
		switch {
		case errors.Is(err, service.ErrAccessDenied):
			http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		case errors.Is(err, store.ErrMembershipNotFound):
			http.Error(w, app.MsgMemberNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.removeMember").Msg("member removal failed")
			http.Error(w, app.MsgInternalServerError, statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
