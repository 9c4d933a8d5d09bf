package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
	"github.com/jackc/pgerrcode"
)

// membershipRepository is the PostgreSQL-backed implementation of
// [MembershipRepository].
type membershipRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMembershipRepository constructs a [MembershipRepository] backed by the
// provided database connection and logger.
func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{
		db:     db,
		logger: logger,
	}
}

// InsertMembership records that a user belongs to a campaign with the given
// role. The (user, campaign) pair is the primary key; inserting a duplicate
// returns [ErrAlreadyMember] regardless of role.
func (r *membershipRepository) InsertMembership(ctx context.Context, membership models.Membership) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertMembership,
		membership.UserID, membership.CampaignID, membership.Role)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.InsertMembership").
			Str("user_id", membership.UserID).Str("campaign_id", membership.CampaignID).
			Msg("error inserting membership")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrAlreadyMember
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetMembership retrieves the membership of one user in one campaign.
// Returns [ErrMembershipNotFound] when the user does not belong to the
// campaign.
func (r *membershipRepository) GetMembership(ctx context.Context, userID, campaignID string) (models.Membership, error) {
	log := logger.FromContext(ctx)

	var m models.Membership
	row := r.db.QueryRowContext(ctx, getMembership, userID, campaignID)

	if err := row.Scan(&m.UserID, &m.CampaignID, &m.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Membership{}, ErrMembershipNotFound
		}

		log.Err(err).Str("func", "*membershipRepository.GetMembership").Msg("error scanning membership row")
		return models.Membership{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

// ListMembershipsByUser returns every membership the user holds, across all
// campaigns.
func (r *membershipRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	return r.listMemberships(ctx, listMembershipsByUser, userID)
}

// ListMembershipsByCampaign returns every membership of one campaign.
func (r *membershipRepository) ListMembershipsByCampaign(ctx context.Context, campaignID string) ([]models.Membership, error) {
	return r.listMemberships(ctx, listMembershipsByCampaign, campaignID)
}

func (r *membershipRepository) listMemberships(ctx context.Context, query, arg string) ([]models.Membership, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.listMemberships").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memberships := make([]models.Membership, 0)

	for rows.Next() {
		var m models.Membership

		if scanErr := rows.Scan(&m.UserID, &m.CampaignID, &m.Role); scanErr != nil {
			log.Err(scanErr).Str("func", "*membershipRepository.listMemberships").Msg("failed to scan membership row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		memberships = append(memberships, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*membershipRepository.listMemberships").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return memberships, nil
}

// DeleteMembership removes one user from one campaign. Returns
// [ErrMembershipNotFound] when the user was not a member.
func (r *membershipRepository) DeleteMembership(ctx context.Context, campaignID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMembership, campaignID, userID)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.DeleteMembership").Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

// CountMemberships returns the number of members of one campaign. Campaigns
// always have at least the master; zero means the campaign does not exist.
func (r *membershipRepository) CountMemberships(ctx context.Context, campaignID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, countMemberships, campaignID)

	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*membershipRepository.CountMemberships").Str("campaign_id", campaignID).Msg("error scanning count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
