package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/utils"
	"github.com/lmiranda/quest-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests. Safe for concurrent use; background refresh workers share the
// adapter with the UI goroutine.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: email, Password: password}).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// CurrentUser implements [ServerAdapter] via GET /api/user/me.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile implements [ServerAdapter] via PUT /api/user/profile.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, name, avatar string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Name: name, Avatar: avatar}).
		SetResult(&user).
		Put("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreateCampaign implements [ServerAdapter] via POST /api/campaigns.
func (h *httpServerAdapter) CreateCampaign(ctx context.Context, name, description string) (models.Campaign, error) {
	var campaign models.Campaign

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Campaign{Name: name, Description: description}).
		SetResult(&campaign).
		Post("/api/campaigns")
	if err != nil {
		return models.Campaign{}, fmt.Errorf("create campaign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Campaign{}, err
	}

	return campaign, nil
}

// GetCampaigns implements [ServerAdapter] via GET /api/campaigns.
func (h *httpServerAdapter) GetCampaigns(ctx context.Context) (models.CampaignList, error) {
	var list models.CampaignList

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/campaigns")
	if err != nil {
		return models.CampaignList{}, fmt.Errorf("get campaigns request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CampaignList{}, err
	}

	return list, nil
}

// GetCampaign implements [ServerAdapter] via GET /api/campaigns/{id}.
func (h *httpServerAdapter) GetCampaign(ctx context.Context, campaignID string) (models.Campaign, error) {
	var campaign models.Campaign

	resp, err := h.authedRequest(ctx).
		SetResult(&campaign).
		Get("/api/campaigns/" + url.PathEscape(campaignID))
	if err != nil {
		return models.Campaign{}, fmt.Errorf("get campaign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Campaign{}, err
	}

	return campaign, nil
}

// UpdateCampaign implements [ServerAdapter] via PATCH /api/campaigns/{id}.
func (h *httpServerAdapter) UpdateCampaign(ctx context.Context, campaignID string, patch models.CampaignPatch) (models.Campaign, error) {
	var campaign models.Campaign

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&campaign).
		Patch("/api/campaigns/" + url.PathEscape(campaignID))
	if err != nil {
		return models.Campaign{}, fmt.Errorf("update campaign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Campaign{}, err
	}

	return campaign, nil
}

// DeleteCampaign implements [ServerAdapter] via DELETE /api/campaigns/{id}.
func (h *httpServerAdapter) DeleteCampaign(ctx context.Context, campaignID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/campaigns/" + url.PathEscape(campaignID))
	if err != nil {
		return fmt.Errorf("delete campaign request: %w", err)
	}

	return mapHTTPError(resp)
}

// JoinCampaign implements [ServerAdapter] via POST /api/campaigns/join.
func (h *httpServerAdapter) JoinCampaign(ctx context.Context, inviteCode string) (models.Campaign, error) {
	var campaign models.Campaign

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"inviteCode": inviteCode}).
		SetResult(&campaign).
		Post("/api/campaigns/join")
	if err != nil {
		return models.Campaign{}, fmt.Errorf("join campaign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Campaign{}, err
	}

	return campaign, nil
}

// ListMembers implements [ServerAdapter] via GET /api/campaigns/{id}/members.
func (h *httpServerAdapter) ListMembers(ctx context.Context, campaignID string) ([]models.Membership, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/campaigns/" + url.PathEscape(campaignID) + "/members")
	if err != nil {
		return nil, fmt.Errorf("list members request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var members []models.Membership
	if err = json.Unmarshal(resp.Body(), &members); err != nil {
		return nil, fmt.Errorf("decode members response: %w", err)
	}

	return members, nil
}

// CountMembers implements [ServerAdapter] via
// GET /api/campaigns/{id}/members/count.
func (h *httpServerAdapter) CountMembers(ctx context.Context, campaignID string) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}

	resp, err := h.authedRequest(ctx).
		SetResult(&payload).
		Get("/api/campaigns/" + url.PathEscape(campaignID) + "/members/count")
	if err != nil {
		return 0, fmt.Errorf("count members request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return payload.Count, nil
}

// RemoveMember implements [ServerAdapter] via
// DELETE /api/campaigns/{id}/members/{memberID}.
func (h *httpServerAdapter) RemoveMember(ctx context.Context, campaignID, memberID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/campaigns/" + url.PathEscape(campaignID) + "/members/" + url.PathEscape(memberID))
	if err != nil {
		return fmt.Errorf("remove member request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListItems implements [ServerAdapter] via
// GET /api/campaigns/{id}/items/{kind}.
func (h *httpServerAdapter) ListItems(ctx context.Context, campaignID string, kind models.ItemKind) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/campaigns/" + url.PathEscape(campaignID) + "/items/" + url.PathEscape(string(kind)))
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode items response: %w", err)
	}

	return items, nil
}

// SaveItem implements [ServerAdapter] via
// POST /api/campaigns/{id}/items/{kind}.
func (h *httpServerAdapter) SaveItem(ctx context.Context, campaignID string, kind models.ItemKind, item models.Item) (models.Item, error) {
	var saved models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&saved).
		Post("/api/campaigns/" + url.PathEscape(campaignID) + "/items/" + url.PathEscape(string(kind)))
	if err != nil {
		return models.Item{}, fmt.Errorf("save item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return saved, nil
}

// DeleteItem implements [ServerAdapter] via
// DELETE /api/campaigns/{id}/items/{kind}/{itemID}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, campaignID string, kind models.ItemKind, itemID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/campaigns/" + url.PathEscape(campaignID) + "/items/" + url.PathEscape(string(kind)) + "/" + url.PathEscape(itemID))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
