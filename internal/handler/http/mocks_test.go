package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/utils"
	"github.com/lmiranda/quest-keeper/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, user models.User) (models.User, error)
	loginFn         func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn   func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn func(ctx context.Context, userID, name, avatar string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID, name, avatar string) (models.User, error) {
	return m.updateProfileFn(ctx, userID, name, avatar)
}

// ─────────────────────────────────────────────
// Mock CampaignService
// ─────────────────────────────────────────────

type mockCampaignService struct {
	createCampaignFn func(ctx context.Context, ownerID, name, description string) (models.Campaign, error)
	getCampaignsFn   func(ctx context.Context, userID string) (models.CampaignList, error)
	getCampaignFn    func(ctx context.Context, userID, campaignID string) (models.Campaign, error)
	updateCampaignFn func(ctx context.Context, userID, campaignID string, patch models.CampaignPatch) (models.Campaign, error)
	deleteCampaignFn func(ctx context.Context, userID, campaignID string) error
	joinCampaignFn   func(ctx context.Context, userID, inviteCode string) (models.Campaign, error)
	listMembersFn    func(ctx context.Context, userID, campaignID string) ([]models.Membership, error)
	countMembersFn   func(ctx context.Context, userID, campaignID string) (int, error)
	removeMemberFn   func(ctx context.Context, requesterID, campaignID, memberID string) error
}

func (m *mockCampaignService) CreateCampaign(ctx context.Context, ownerID, name, description string) (models.Campaign, error) {
	return m.createCampaignFn(ctx, ownerID, name, description)
}

func (m *mockCampaignService) GetCampaigns(ctx context.Context, userID string) (models.CampaignList, error) {
	return m.getCampaignsFn(ctx, userID)
}

func (m *mockCampaignService) GetCampaign(ctx context.Context, userID, campaignID string) (models.Campaign, error) {
	return m.getCampaignFn(ctx, userID, campaignID)
}

func (m *mockCampaignService) UpdateCampaign(ctx context.Context, userID, campaignID string, patch models.CampaignPatch) (models.Campaign, error) {
	return m.updateCampaignFn(ctx, userID, campaignID, patch)
}

func (m *mockCampaignService) DeleteCampaign(ctx context.Context, userID, campaignID string) error {
	return m.deleteCampaignFn(ctx, userID, campaignID)
}

func (m *mockCampaignService) JoinCampaign(ctx context.Context, userID, inviteCode string) (models.Campaign, error) {
	return m.joinCampaignFn(ctx, userID, inviteCode)
}

func (m *mockCampaignService) ListMembers(ctx context.Context, userID, campaignID string) ([]models.Membership, error) {
	return m.listMembersFn(ctx, userID, campaignID)
}

func (m *mockCampaignService) CountMembers(ctx context.Context, userID, campaignID string) (int, error) {
	return m.countMembersFn(ctx, userID, campaignID)
}

func (m *mockCampaignService) RemoveMember(ctx context.Context, requesterID, campaignID, memberID string) error {
	return m.removeMemberFn(ctx, requesterID, campaignID, memberID)
}

// ─────────────────────────────────────────────
// Mock ItemService
// ─────────────────────────────────────────────

type mockItemService struct {
	listItemsFn  func(ctx context.Context, userID string, kind models.ItemKind, campaignID string) ([]models.Item, error)
	saveItemFn   func(ctx context.Context, userID string, kind models.ItemKind, item models.Item) (models.Item, error)
	deleteItemFn func(ctx context.Context, userID string, kind models.ItemKind, campaignID, itemID string) error
}

func (m *mockItemService) ListItems(ctx context.Context, userID string, kind models.ItemKind, campaignID string) ([]models.Item, error) {
	return m.listItemsFn(ctx, userID, kind, campaignID)
}

func (m *mockItemService) SaveItem(ctx context.Context, userID string, kind models.ItemKind, item models.Item) (models.Item, error) {
	return m.saveItemFn(ctx, userID, kind, item)
}

func (m *mockItemService) DeleteItem(ctx context.Context, userID string, kind models.ItemKind, campaignID, itemID string) error {
	return m.deleteItemFn(ctx, userID, kind, campaignID, itemID)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, campaigns service.CampaignService, items service.ItemService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		CampaignService: campaigns,
		ItemService:     items,
		AppInfoService:  &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}

// authedRequest builds a request carrying the given user id in its context,
// as the auth middleware would after validating a token.
func authedRequest(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// withURLParams attaches chi URL parameters to the request, as the router
// would when dispatching a parameterised route.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
