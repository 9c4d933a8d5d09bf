package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/models"
)

func newTestCampaignService(
	campaigns *mockCampaignRepository,
	memberships *mockMembershipRepository,
	profiles *mockProfileRepository,
) CampaignService {
	return NewCampaignService(campaigns, memberships, profiles, logger.Nop())
}

func TestCreateCampaign_Success(t *testing.T) {
	campaigns := &mockCampaignRepository{
		createFn: func(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
			assert.Equal(t, "u-1", campaign.OwnerID)
			assert.Equal(t, models.StatusActive, campaign.Status)
			assert.Len(t, campaign.InviteCode, models.InviteCodeLength)
			for _, r := range campaign.InviteCode {
				assert.Contains(t, inviteCodeAlphabet, string(r))
			}
			campaign.ID = "c-1"
			return campaign, nil
		},
	}
	memberships := &mockMembershipRepository{}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	created, err := service.CreateCampaign(context.Background(), "u-1", "A Queda de Valdris", "sombria")

	require.NoError(t, err)
	assert.Equal(t, "c-1", created.ID)
	require.Len(t, memberships.insertedMember, 1)
	assert.Equal(t, models.RoleMaster, memberships.insertedMember[0].Role)
	assert.Equal(t, "u-1", memberships.insertedMember[0].UserID)
	assert.Equal(t, "c-1", memberships.insertedMember[0].CampaignID)
}

func TestCreateCampaign_EmptyName(t *testing.T) {
	service := newTestCampaignService(&mockCampaignRepository{}, &mockMembershipRepository{}, &mockProfileRepository{})

	_, err := service.CreateCampaign(context.Background(), "u-1", "", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateCampaign_MembershipFailureRollsBack(t *testing.T) {
	insertErr := errors.New("insert blew up")
	campaigns := &mockCampaignRepository{}
	memberships := &mockMembershipRepository{
		insertFn: func(ctx context.Context, membership models.Membership) error {
			return insertErr
		},
	}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	_, err := service.CreateCampaign(context.Background(), "u-1", "Nova Campanha", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	// the freshly created campaign must be deleted again
	require.Len(t, campaigns.deletedIDs, 1)
	assert.Equal(t, "c-1", campaigns.deletedIDs[0])
}

func TestGetCampaigns_PartitionAndOrder(t *testing.T) {
	now := time.Now()
	memberships := &mockMembershipRepository{
		listByUserFn: func(ctx context.Context, userID string) ([]models.Membership, error) {
			return []models.Membership{
				{UserID: userID, CampaignID: "c-old-master", Role: models.RoleMaster},
				{UserID: userID, CampaignID: "c-player", Role: models.RolePlayer},
				{UserID: userID, CampaignID: "c-new-master", Role: models.RoleMaster},
			}, nil
		},
	}
	campaigns := &mockCampaignRepository{
		getByIDsFn: func(ctx context.Context, ids []string) ([]models.Campaign, error) {
			assert.ElementsMatch(t, []string{"c-old-master", "c-player", "c-new-master"}, ids)
			return []models.Campaign{
				{ID: "c-old-master", CreatedAt: models.EpochTime(now.Add(-2 * time.Hour))},
				{ID: "c-player", CreatedAt: models.EpochTime(now.Add(-time.Hour))},
				{ID: "c-new-master", CreatedAt: models.EpochTime(now)},
			}, nil
		},
	}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	list, err := service.GetCampaigns(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, list.Master, 2)
	require.Len(t, list.Player, 1)
	// newest first
	assert.Equal(t, "c-new-master", list.Master[0].ID)
	assert.Equal(t, "c-old-master", list.Master[1].ID)
	assert.Equal(t, "c-player", list.Player[0].ID)
}

func TestGetCampaign_NonMember(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{}, store.ErrMembershipNotFound
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	_, err := service.GetCampaign(context.Background(), "stranger", "c-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateCampaign_PlayerDenied(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RolePlayer}, nil
		},
	}
	campaigns := &mockCampaignRepository{
		updateFn: func(ctx context.Context, id string, patch models.CampaignPatch) error {
			t.Fatal("update must not be reached for a player")
			return nil
		},
	}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	name := "renamed"
	_, err := service.UpdateCampaign(context.Background(), "p-1", "c-1", models.CampaignPatch{Name: &name})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateCampaign_ReturnsFreshCampaign(t *testing.T) {
	memberships := &mockMembershipRepository{}
	campaigns := &mockCampaignRepository{
		getByIDFn: func(ctx context.Context, id string) (models.Campaign, error) {
			return models.Campaign{ID: id, Name: "renamed"}, nil
		},
	}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	name := "renamed"
	updated, err := service.UpdateCampaign(context.Background(), "m-1", "c-1", models.CampaignPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestDeleteCampaign_PlayerDenied(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RolePlayer}, nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	err := service.DeleteCampaign(context.Background(), "p-1", "c-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestJoinCampaign_Success(t *testing.T) {
	campaigns := &mockCampaignRepository{
		getByInviteFn: func(ctx context.Context, code string) (models.Campaign, error) {
			assert.Equal(t, "XK29QZ", code)
			return models.Campaign{ID: "c-1", InviteCode: code}, nil
		},
	}
	memberships := &mockMembershipRepository{}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	joined, err := service.JoinCampaign(context.Background(), "u-2", "  XK29QZ  ")

	require.NoError(t, err)
	assert.Equal(t, "c-1", joined.ID)
	require.Len(t, memberships.insertedMember, 1)
	assert.Equal(t, models.RolePlayer, memberships.insertedMember[0].Role)
}

func TestJoinCampaign_WrongCodeLength(t *testing.T) {
	service := newTestCampaignService(&mockCampaignRepository{}, &mockMembershipRepository{}, &mockProfileRepository{})

	_, err := service.JoinCampaign(context.Background(), "u-2", "XK2")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestJoinCampaign_AlreadyMember(t *testing.T) {
	campaigns := &mockCampaignRepository{
		getByInviteFn: func(ctx context.Context, code string) (models.Campaign, error) {
			return models.Campaign{ID: "c-1"}, nil
		},
	}
	memberships := &mockMembershipRepository{
		insertFn: func(ctx context.Context, membership models.Membership) error {
			return store.ErrAlreadyMember
		},
	}
	service := newTestCampaignService(campaigns, memberships, &mockProfileRepository{})

	_, err := service.JoinCampaign(context.Background(), "u-2", "XK29QZ")

	assert.ErrorIs(t, err, store.ErrAlreadyMember)
}

func TestJoinCampaign_UnknownCode(t *testing.T) {
	campaigns := &mockCampaignRepository{
		getByInviteFn: func(ctx context.Context, code string) (models.Campaign, error) {
			return models.Campaign{}, store.ErrCampaignNotFound
		},
	}
	service := newTestCampaignService(campaigns, &mockMembershipRepository{}, &mockProfileRepository{})

	_, err := service.JoinCampaign(context.Background(), "u-2", "AAAAAA")

	assert.ErrorIs(t, err, store.ErrCampaignNotFound)
}

func TestListMembers_AttachesProfilesAndSortsMasterFirst(t *testing.T) {
	memberships := &mockMembershipRepository{
		listByCampFn: func(ctx context.Context, campaignID string) ([]models.Membership, error) {
			return []models.Membership{
				{UserID: "p-1", CampaignID: campaignID, Role: models.RolePlayer},
				{UserID: "m-1", CampaignID: campaignID, Role: models.RoleMaster},
			}, nil
		},
	}
	profiles := &mockProfileRepository{
		getByIDsFn: func(ctx context.Context, ids []string) ([]models.Profile, error) {
			return []models.Profile{{ID: "m-1", Name: "Mestre"}}, nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, profiles)

	members, err := service.ListMembers(context.Background(), "m-1", "c-1")

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, models.RoleMaster, members[0].Role)
	require.NotNil(t, members[0].Profile)
	assert.Equal(t, "Mestre", members[0].Profile.Name)
	assert.Nil(t, members[1].Profile)
}

func TestListMembers_ProfileFetchFailureIsSwallowed(t *testing.T) {
	memberships := &mockMembershipRepository{
		listByCampFn: func(ctx context.Context, campaignID string) ([]models.Membership, error) {
			return []models.Membership{
				{UserID: "m-1", CampaignID: campaignID, Role: models.RoleMaster},
			}, nil
		},
	}
	profiles := &mockProfileRepository{
		getByIDsFn: func(ctx context.Context, ids []string) ([]models.Profile, error) {
			return nil, errors.New("profiles table down")
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, profiles)

	members, err := service.ListMembers(context.Background(), "m-1", "c-1")

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Nil(t, members[0].Profile)
}

func TestRemoveMember_MasterRemovesPlayer(t *testing.T) {
	deleted := false
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			role := models.RolePlayer
			if userID == "m-1" {
				role = models.RoleMaster
			}
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: role}, nil
		},
		deleteFn: func(ctx context.Context, campaignID, userID string) error {
			deleted = true
			assert.Equal(t, "c-1", campaignID)
			assert.Equal(t, "p-1", userID)
			return nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	err := service.RemoveMember(context.Background(), "m-1", "c-1", "p-1")

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRemoveMember_PlayerLeavesThemselves(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RolePlayer}, nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	err := service.RemoveMember(context.Background(), "p-1", "c-1", "p-1")

	assert.NoError(t, err)
}

func TestRemoveMember_MasterCannotBeRemoved(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RoleMaster}, nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	err := service.RemoveMember(context.Background(), "m-1", "c-1", "m-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestRemoveMember_PlayerCannotRemoveOtherPlayer(t *testing.T) {
	memberships := &mockMembershipRepository{
		getFn: func(ctx context.Context, userID, campaignID string) (models.Membership, error) {
			return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RolePlayer}, nil
		},
	}
	service := newTestCampaignService(&mockCampaignRepository{}, memberships, &mockProfileRepository{})

	err := service.RemoveMember(context.Background(), "p-1", "c-1", "p-2")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGenerateInviteCode_Shape(t *testing.T) {
	code := generateInviteCode()

	assert.Len(t, code, models.InviteCodeLength)
	assert.Equal(t, strings.ToUpper(code), code)
	for _, r := range code {
		assert.Contains(t, inviteCodeAlphabet, string(r))
	}
}
