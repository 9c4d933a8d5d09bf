package service

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, id string) (models.User, error)
	updateMetaFn  func(ctx context.Context, id, name, avatar string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (m *mockUserRepository) UpdateUserMeta(ctx context.Context, id, name, avatar string) error {
	if m.updateMetaFn != nil {
		return m.updateMetaFn(ctx, id, name, avatar)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProfileRepository
// ─────────────────────────────────────────────

type mockProfileRepository struct {
	upsertFn   func(ctx context.Context, profile models.Profile) error
	getFn      func(ctx context.Context, id string) (models.Profile, error)
	getByIDsFn func(ctx context.Context, ids []string) ([]models.Profile, error)
}

func (m *mockProfileRepository) UpsertProfile(ctx context.Context, profile models.Profile) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Profile{}, nil
}

func (m *mockProfileRepository) GetProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.CampaignRepository
// ─────────────────────────────────────────────

type mockCampaignRepository struct {
	createFn       func(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	getByIDFn      func(ctx context.Context, id string) (models.Campaign, error)
	getByInviteFn  func(ctx context.Context, code string) (models.Campaign, error)
	getByIDsFn     func(ctx context.Context, ids []string) ([]models.Campaign, error)
	updateFn       func(ctx context.Context, id string, patch models.CampaignPatch) error
	deleteFn       func(ctx context.Context, id string) error
	deletedIDs     []string
	insertedCounts int
}

func (m *mockCampaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	m.insertedCounts++
	if m.createFn != nil {
		return m.createFn(ctx, campaign)
	}
	campaign.ID = "c-1"
	return campaign, nil
}

func (m *mockCampaignRepository) GetCampaignByID(ctx context.Context, id string) (models.Campaign, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Campaign{ID: id}, nil
}

func (m *mockCampaignRepository) GetCampaignByInviteCode(ctx context.Context, code string) (models.Campaign, error) {
	if m.getByInviteFn != nil {
		return m.getByInviteFn(ctx, code)
	}
	return models.Campaign{}, nil
}

func (m *mockCampaignRepository) GetCampaignsByIDs(ctx context.Context, ids []string) ([]models.Campaign, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockCampaignRepository) UpdateCampaign(ctx context.Context, id string, patch models.CampaignPatch) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil
}

func (m *mockCampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.MembershipRepository
// ─────────────────────────────────────────────

type mockMembershipRepository struct {
	insertFn       func(ctx context.Context, membership models.Membership) error
	getFn          func(ctx context.Context, userID, campaignID string) (models.Membership, error)
	listByUserFn   func(ctx context.Context, userID string) ([]models.Membership, error)
	listByCampFn   func(ctx context.Context, campaignID string) ([]models.Membership, error)
	deleteFn       func(ctx context.Context, campaignID, userID string) error
	countFn        func(ctx context.Context, campaignID string) (int, error)
	insertedMember []models.Membership
}

func (m *mockMembershipRepository) InsertMembership(ctx context.Context, membership models.Membership) error {
	m.insertedMember = append(m.insertedMember, membership)
	if m.insertFn != nil {
		return m.insertFn(ctx, membership)
	}
	return nil
}

func (m *mockMembershipRepository) GetMembership(ctx context.Context, userID, campaignID string) (models.Membership, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, campaignID)
	}
	return models.Membership{UserID: userID, CampaignID: campaignID, Role: models.RoleMaster}, nil
}

func (m *mockMembershipRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) ListMembershipsByCampaign(ctx context.Context, campaignID string) ([]models.Membership, error) {
	if m.listByCampFn != nil {
		return m.listByCampFn(ctx, campaignID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) DeleteMembership(ctx context.Context, campaignID, userID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, campaignID, userID)
	}
	return nil
}

func (m *mockMembershipRepository) CountMemberships(ctx context.Context, campaignID string) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, campaignID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ItemRepository
// ─────────────────────────────────────────────

type mockItemRepository struct {
	listFn   func(ctx context.Context, kind models.ItemKind, campaignID string) ([]models.Item, error)
	getFn    func(ctx context.Context, kind models.ItemKind, campaignID, id string) (models.Item, error)
	saveFn   func(ctx context.Context, kind models.ItemKind, item models.Item) (models.Item, error)
	deleteFn func(ctx context.Context, kind models.ItemKind, campaignID, id string) error
}

func (m *mockItemRepository) ListItems(ctx context.Context, kind models.ItemKind, campaignID string) ([]models.Item, error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind, campaignID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetItem(ctx context.Context, kind models.ItemKind, campaignID, id string) (models.Item, error) {
	if m.getFn != nil {
		return m.getFn(ctx, kind, campaignID, id)
	}
	return models.Item{ID: id, CampaignID: campaignID}, nil
}

func (m *mockItemRepository) SaveItem(ctx context.Context, kind models.ItemKind, item models.Item) (models.Item, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, kind, item)
	}
	return item, nil
}

func (m *mockItemRepository) DeleteItem(ctx context.Context, kind models.ItemKind, campaignID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, kind, campaignID, id)
	}
	return nil
}
