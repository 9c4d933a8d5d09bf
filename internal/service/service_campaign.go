package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/models"
)

// inviteCodeAlphabet is the character set invite codes are drawn from.
// Upper-case only, so codes survive case-insensitive entry.
const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// campaignService is the concrete implementation of CampaignService. It owns
// campaign lifecycle, membership, and the master/player authorization rules.
type campaignService struct {
	campaignRepository   store.CampaignRepository
	membershipRepository store.MembershipRepository
	profileRepository    store.ProfileRepository

	logger *logger.Logger
}

func NewCampaignService(
	campaignRepository store.CampaignRepository,
	membershipRepository store.MembershipRepository,
	profileRepository store.ProfileRepository,
	logger *logger.Logger,
) CampaignService {
	return &campaignService{
		campaignRepository:   campaignRepository,
		membershipRepository: membershipRepository,
		profileRepository:    profileRepository,
		logger:               logger,
	}
}

// CreateCampaign inserts a new campaign owned by ownerID and enrolls the
// owner as its MASTER.
//
// The two writes are not transactional: if the membership insert fails, the
// freshly created campaign is deleted again so no campaign exists without a
// master. A failure of the compensating delete is logged and the original
// error is still returned.
func (s *campaignService) CreateCampaign(ctx context.Context, ownerID, name, description string) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" || name == "" {
		return models.Campaign{}, ErrInvalidDataProvided
	}

	campaign := models.Campaign{
		Name:        name,
		Description: description,
		InviteCode:  generateInviteCode(),
		OwnerID:     ownerID,
		Status:      models.StatusActive,
	}

	created, err := s.campaignRepository.CreateCampaign(ctx, campaign)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("campaign creation failed")
		return models.Campaign{}, fmt.Errorf("campaign creation failed: %w", err)
	}

	membership := models.Membership{
		UserID:     ownerID,
		CampaignID: created.ID,
		Role:       models.RoleMaster,
	}
	if err = s.membershipRepository.InsertMembership(ctx, membership); err != nil {
		log.Err(err).Str("campaign_id", created.ID).Msg("master membership insert failed, rolling back campaign")

		if delErr := s.campaignRepository.DeleteCampaign(ctx, created.ID); delErr != nil {
			log.Err(delErr).Str("campaign_id", created.ID).Msg("compensating campaign delete failed")
		}

		return models.Campaign{}, fmt.Errorf("master membership insert failed: %w", err)
	}

	return created, nil
}

// GetCampaigns returns every campaign the user belongs to, partitioned by
// role and ordered newest first within each partition.
func (s *campaignService) GetCampaigns(ctx context.Context, userID string) (models.CampaignList, error) {
	log := logger.FromContext(ctx)

	memberships, err := s.membershipRepository.ListMembershipsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("membership listing failed")
		return models.CampaignList{}, fmt.Errorf("membership listing failed: %w", err)
	}

	roleByCampaign := make(map[string]models.Role, len(memberships))
	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		roleByCampaign[m.CampaignID] = m.Role
		ids = append(ids, m.CampaignID)
	}

	campaigns, err := s.campaignRepository.GetCampaignsByIDs(ctx, ids)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("campaign fetch failed")
		return models.CampaignList{}, fmt.Errorf("campaign fetch failed: %w", err)
	}

	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.Time().After(campaigns[j].CreatedAt.Time())
	})

	list := models.CampaignList{
		Master: make([]models.Campaign, 0, len(campaigns)),
		Player: make([]models.Campaign, 0, len(campaigns)),
	}
	for _, c := range campaigns {
		if roleByCampaign[c.ID] == models.RoleMaster {
			list.Master = append(list.Master, c)
		} else {
			list.Player = append(list.Player, c)
		}
	}

	return list, nil
}

// GetCampaign returns one campaign the user belongs to. Non-members get
// ErrAccessDenied regardless of whether the campaign exists.
func (s *campaignService) GetCampaign(ctx context.Context, userID, campaignID string) (models.Campaign, error) {
	if _, err := s.requireMembership(ctx, userID, campaignID); err != nil {
		return models.Campaign{}, err
	}

	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("campaign fetch failed: %w", err)
	}

	return campaign, nil
}

// UpdateCampaign applies a sparse patch to the campaign. Master only.
func (s *campaignService) UpdateCampaign(ctx context.Context, userID, campaignID string, patch models.CampaignPatch) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	if err := s.requireMaster(ctx, userID, campaignID); err != nil {
		return models.Campaign{}, err
	}

	if err := s.campaignRepository.UpdateCampaign(ctx, campaignID, patch); err != nil {
		log.Err(err).Str("campaign_id", campaignID).Msg("campaign update failed")
		return models.Campaign{}, fmt.Errorf("campaign update failed: %w", err)
	}

	campaign, err := s.campaignRepository.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("campaign fetch failed: %w", err)
	}

	return campaign, nil
}

// DeleteCampaign removes the campaign and, via the database cascade, all its
// memberships and items. Master only.
func (s *campaignService) DeleteCampaign(ctx context.Context, userID, campaignID string) error {
	log := logger.FromContext(ctx)

	if err := s.requireMaster(ctx, userID, campaignID); err != nil {
		return err
	}

	if err := s.campaignRepository.DeleteCampaign(ctx, campaignID); err != nil {
		log.Err(err).Str("campaign_id", campaignID).Msg("campaign delete failed")
		return fmt.Errorf("campaign delete failed: %w", err)
	}

	return nil
}

// JoinCampaign enrolls the user as a PLAYER of the campaign matching the
// invite code. The code is matched case-insensitively. Joining a campaign
// the user already belongs to (in any role) fails with
// store.ErrAlreadyMember.
func (s *campaignService) JoinCampaign(ctx context.Context, userID, inviteCode string) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	code := strings.TrimSpace(inviteCode)
	if len(code) != models.InviteCodeLength {
		return models.Campaign{}, ErrInvalidDataProvided
	}

	campaign, err := s.campaignRepository.GetCampaignByInviteCode(ctx, code)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("campaign lookup by invite code failed")
		return models.Campaign{}, fmt.Errorf("campaign lookup by invite code failed: %w", err)
	}

	membership := models.Membership{
		UserID:     userID,
		CampaignID: campaign.ID,
		Role:       models.RolePlayer,
	}
	if err = s.membershipRepository.InsertMembership(ctx, membership); err != nil {
		log.Err(err).Str("campaign_id", campaign.ID).Str("user_id", userID).Msg("join failed")
		return models.Campaign{}, fmt.Errorf("join failed: %w", err)
	}

	return campaign, nil
}

// ListMembers returns the memberships of the campaign with public profiles
// attached where available. A member whose profile row is missing is still
// listed, just without profile data.
func (s *campaignService) ListMembers(ctx context.Context, userID, campaignID string) ([]models.Membership, error) {
	log := logger.FromContext(ctx)

	if _, err := s.requireMembership(ctx, userID, campaignID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepository.ListMembershipsByCampaign(ctx, campaignID)
	if err != nil {
		log.Err(err).Str("campaign_id", campaignID).Msg("membership listing failed")
		return nil, fmt.Errorf("membership listing failed: %w", err)
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID)
	}

	profiles, err := s.profileRepository.GetProfilesByIDs(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Str("campaign_id", campaignID).Msg("profile fetch failed, listing members without profiles")
		return memberships, nil
	}

	profileByID := make(map[string]models.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	for i := range memberships {
		if p, ok := profileByID[memberships[i].UserID]; ok {
			profile := p
			memberships[i].Profile = &profile
		}
	}

	// masters first, then by name
	sort.SliceStable(memberships, func(i, j int) bool {
		return memberships[i].Role == models.RoleMaster && memberships[j].Role != models.RoleMaster
	})

	return memberships, nil
}

// CountMembers returns the number of members of the campaign.
func (s *campaignService) CountMembers(ctx context.Context, userID, campaignID string) (int, error) {
	if _, err := s.requireMembership(ctx, userID, campaignID); err != nil {
		return 0, err
	}

	count, err := s.membershipRepository.CountMemberships(ctx, campaignID)
	if err != nil {
		return 0, fmt.Errorf("membership count failed: %w", err)
	}

	return count, nil
}

// RemoveMember removes a player from the campaign. The master may remove any
// player; a player may remove only themselves (leaving the campaign). The
// master cannot be removed: a campaign never exists without one.
func (s *campaignService) RemoveMember(ctx context.Context, requesterID, campaignID, memberID string) error {
	log := logger.FromContext(ctx)

	target, err := s.membershipRepository.GetMembership(ctx, memberID, campaignID)
	if err != nil {
		return fmt.Errorf("membership lookup failed: %w", err)
	}
	if target.Role == models.RoleMaster {
		return ErrAccessDenied
	}

	if requesterID != memberID {
		if err = s.requireMaster(ctx, requesterID, campaignID); err != nil {
			return err
		}
	}

	if err = s.membershipRepository.DeleteMembership(ctx, campaignID, memberID); err != nil {
		log.Err(err).Str("campaign_id", campaignID).Str("member_id", memberID).Msg("member removal failed")
		return fmt.Errorf("member removal failed: %w", err)
	}

	return nil
}

// requireMembership returns the caller's membership in the campaign or
// ErrAccessDenied when the caller does not belong to it.
func (s *campaignService) requireMembership(ctx context.Context, userID, campaignID string) (models.Membership, error) {
	membership, err := s.membershipRepository.GetMembership(ctx, userID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrMembershipNotFound) {
			return models.Membership{}, ErrAccessDenied
		}
		return models.Membership{}, fmt.Errorf("membership lookup failed: %w", err)
	}

	return membership, nil
}

// requireMaster returns ErrAccessDenied unless the caller is the campaign's
// MASTER.
func (s *campaignService) requireMaster(ctx context.Context, userID, campaignID string) error {
	membership, err := s.requireMembership(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if membership.Role != models.RoleMaster {
		return ErrAccessDenied
	}

	return nil
}

// generateInviteCode draws a fresh invite code. Uniqueness is not checked
// here; a collision is rejected by the campaigns table's unique constraint.
func generateInviteCode() string {
	code := make([]byte, models.InviteCodeLength)
	for i := range code {
		code[i] = inviteCodeAlphabet[rand.Intn(len(inviteCodeAlphabet))]
	}
	return string(code)
}
