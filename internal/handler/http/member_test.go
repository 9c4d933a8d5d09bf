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

func TestListMembers_Success(t *testing.T) {
	campaigns := &mockCampaignService{
		listMembersFn: func(_ context.Context, userID, campaignID string) ([]models.Membership, error) {
			return []models.Membership{
				{UserID: "m-1", CampaignID: campaignID, Role: models.RoleMaster, Profile: &models.Profile{ID: "m-1", Name: "Mestre"}},
				{UserID: "p-1", CampaignID: campaignID, Role: models.RolePlayer},
			}, nil
		},
	}

	h := newTestHandler(t, nil, campaigns, nil)
	req := authedRequest(http.MethodGet, "/api/campaigns/c-1/members", "", "m-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.listMembers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Membership
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.NotNil(t, got[0].Profile)
	assert.Nil(t, got[1].Profile)
}

func TestCountMembers_Success(t *testing.T) {
	campaigns := &mockCampaignService{
		countMembersFn: func(_ context.Context, userID, campaignID string) (int, error) {
			return 4, nil
		},
	}

	h := newTestHandler(t, nil, campaigns, nil)
	req := authedRequest(http.MethodGet, "/api/campaigns/c-1/members/count", "", "m-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1"})
	rec := httptest.NewRecorder()

	h.countMembers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4, got["count"])
}

func TestRemoveMember_Success(t *testing.T) {
	campaigns := &mockCampaignService{
		removeMemberFn: func(_ context.Context, requesterID, campaignID, memberID string) error {
			assert.Equal(t, "m-1", requesterID)
			assert.Equal(t, "c-1", campaignID)
			assert.Equal(t, "p-1", memberID)
			return nil
		},
	}

	h := newTestHandler(t, nil, campaigns, nil)
	req := authedRequest(http.MethodDelete, "/api/campaigns/c-1/members/p-1", "", "m-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "memberID": "p-1"})
	rec := httptest.NewRecorder()

	h.removeMember(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveMember_MasterProtected(t *testing.T) {
	campaigns := &mockCampaignService{
		removeMemberFn: func(_ context.Context, _, _, _ string) error {
			return service.ErrAccessDenied
		},
	}

	h := newTestHandler(t, nil, campaigns, nil)
	req := authedRequest(http.MethodDelete, "/api/campaigns/c-1/members/m-1", "", "p-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "memberID": "m-1"})
	rec := httptest.NewRecorder()

	h.removeMember(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRemoveMember_NotFound(t *testing.T) {
	campaigns := &mockCampaignService{
		removeMemberFn: func(_ context.Context, _, _, _ string) error {
			return store.ErrMembershipNotFound
		},
	}

	h := newTestHandler(t, nil, campaigns, nil)
	req := authedRequest(http.MethodDelete, "/api/campaigns/c-1/members/ghost", "", "m-1")
	req = withURLParams(req, map[string]string{"campaignID": "c-1", "memberID": "ghost"})
	rec := httptest.NewRecorder()

	h.removeMember(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
