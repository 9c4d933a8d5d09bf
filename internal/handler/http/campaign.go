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

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var payload models.Campaign
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createCampaign").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	campaign, err := h.services.CampaignService.CreateCampaign(ctx, userID, payload.Name, payload.Description)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCampaign").Msg("campaign creation failed")
		http.Error(w, app.MsgInvalidDataProvided, statusFromError(err))
		return
	}

	utils.WriteJSON(w, campaign, http.StatusCreated)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	list, err := h.services.CampaignService.GetCampaigns(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCampaigns").Msg("campaign listing failed")
		http.Error(w, app.MsgInternalServerError, statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	campaign, err := h.services.CampaignService.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccessDenied):
			http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		case errors.Is(err, store.ErrCampaignNotFound):
			http.Error(w, app.MsgCampaignNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.getCampaign").Msg("campaign fetch failed")
			http.Error(w, app.MsgInternalServerError, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var patch models.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateCampaign").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	campaign, err := h.services.CampaignService.UpdateCampaign(ctx, userID, campaignID, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCampaign").Msg("campaign update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	campaignID := chi.URLParam(r, "campaignID")
	if err := h.services.CampaignService.DeleteCampaign(ctx, userID, campaignID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCampaign").Msg("campaign delete failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) joinCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var payload struct {
		InviteCode string `json:"inviteCode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.joinCampaign").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	campaign, err := h.services.CampaignService.JoinCampaign(ctx, userID, payload.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidInviteCode, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCampaignNotFound):
			http.Error(w, app.MsgCampaignNotFound, http.StatusNotFound)
			return
		case errors.Is(err, store.ErrAlreadyMember):
			http.Error(w, app.MsgAlreadyJoined, http.StatusConflict)
			return
		default:
			log.Err(err).Str("func", "*Handler.joinCampaign").Msg("join failed")
			http.Error(w, app.MsgInternalServerError, statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}
