package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/app"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/mock"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/models"
)

func newTestClientCampaign(t *testing.T, ctrl *gomock.Controller) (ClientCampaignService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCampaignService(mockAdapter, logger.Nop())
	return svc, mockAdapter
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

func TestClientCampaignService_CreateCampaign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	created := models.Campaign{ID: "c-1", Name: "A Maldição", InviteCode: "XK29QZ"}
	mockAdapter.EXPECT().CreateCampaign(ctx, "A Maldição", "a longa noite").Return(created, nil)

	got, err := svc.CreateCampaign(ctx, "A Maldição", "a longa noite")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientCampaignService_CreateCampaign_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided)
	mockAdapter.EXPECT().CreateCampaign(ctx, "", "").Return(models.Campaign{}, transportErr)

	_, err := svc.CreateCampaign(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientCampaignService_Campaigns_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	list := models.CampaignList{
		Master: []models.Campaign{{ID: "c-1"}},
		Player: []models.Campaign{{ID: "c-2"}, {ID: "c-3"}},
	}
	mockAdapter.EXPECT().GetCampaigns(ctx).Return(list, nil)

	got, err := svc.Campaigns(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestClientCampaignService_Campaign_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgCampaignNotFound)
	mockAdapter.EXPECT().GetCampaign(ctx, "c-missing").Return(models.Campaign{}, transportErr)

	_, err := svc.Campaign(ctx, "c-missing")
	assert.ErrorIs(t, err, store.ErrCampaignNotFound)
}

func TestClientCampaignService_UpdateCampaign_AccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	name := "renamed"
	patch := models.CampaignPatch{Name: &name}
	transportErr := fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgAccessDenied)
	mockAdapter.EXPECT().UpdateCampaign(ctx, "c-1", patch).Return(models.Campaign{}, transportErr)

	_, err := svc.UpdateCampaign(ctx, "c-1", patch)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestClientCampaignService_JoinCampaign_AlreadyMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgAlreadyJoined)
	mockAdapter.EXPECT().JoinCampaign(ctx, "XK29QZ").Return(models.Campaign{}, transportErr)

	_, err := svc.JoinCampaign(ctx, "XK29QZ")
	assert.ErrorIs(t, err, store.ErrAlreadyMember)
}

func TestClientCampaignService_DeleteCampaign_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteCampaign(ctx, "c-1").Return(nil)

	require.NoError(t, svc.DeleteCampaign(ctx, "c-1"))
}

// ── Degrading reads ──────────────────────────────────────────────────────────

func TestClientCampaignService_Members_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	members := []models.Membership{
		{UserID: "u-1", Role: models.RoleMaster},
		{UserID: "u-2", Role: models.RolePlayer},
	}
	mockAdapter.EXPECT().ListMembers(ctx, "c-1").Return(members, nil)

	got := svc.Members(ctx, "c-1")
	assert.Equal(t, members, got)
}

func TestClientCampaignService_Members_FetchFailureYieldsEmptySlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError)
	mockAdapter.EXPECT().ListMembers(ctx, "c-1").Return(nil, transportErr)

	got := svc.Members(ctx, "c-1")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClientCampaignService_MemberCount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CountMembers(ctx, "c-1").Return(4, nil)

	assert.Equal(t, 4, svc.MemberCount(ctx, "c-1"))
}

func TestClientCampaignService_MemberCount_FetchFailureYieldsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrBadGateway, "upstream down")
	mockAdapter.EXPECT().CountMembers(ctx, "c-1").Return(0, transportErr)

	assert.Equal(t, 0, svc.MemberCount(ctx, "c-1"))
}

func TestClientCampaignService_RemoveMember_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCampaign(t, ctrl)
	ctx := context.Background()

	transportErr := fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgMemberNotFound)
	mockAdapter.EXPECT().RemoveMember(ctx, "c-1", "u-9").Return(transportErr)

	err := svc.RemoveMember(ctx, "c-1", "u-9")
	assert.ErrorIs(t, err, store.ErrMembershipNotFound)
}
