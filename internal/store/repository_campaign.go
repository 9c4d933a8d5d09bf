package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
	"github.com/jackc/pgerrcode"
)

// campaignRepository is the PostgreSQL-backed implementation of
// [CampaignRepository].
type campaignRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCampaignRepository constructs a [CampaignRepository] backed by the
// provided database connection and logger.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCampaign inserts a new campaign row and returns it with
// server-assigned fields (ID, CreatedAt) populated.
//
// The invite code is generated by the caller without checking existing
// codes; a collision is rejected by the unique constraint and surfaced as
// [ErrInviteCodeTaken].
func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	if campaign.Status == "" {
		campaign.Status = models.StatusActive
	}

	row := r.db.QueryRowContext(ctx, createCampaign,
		campaign.Name, campaign.Description, campaign.InviteCode, campaign.OwnerID, campaign.Status)

	if err := scanCampaign(row, &campaign); err != nil {
		log.Err(err).Str("func", "*campaignRepository.CreateCampaign").Str("owner_id", campaign.OwnerID).Msg("error creating campaign")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Campaign{}, ErrInviteCodeTaken
		}
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return campaign, nil
}

// GetCampaignByID retrieves one campaign by id. Returns
// [ErrCampaignNotFound] when no row matches.
func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (models.Campaign, error) {
	return r.getCampaign(ctx, getCampaignByID, id)
}

// GetCampaignByInviteCode retrieves one campaign by its invite code. The
// lookup is case-insensitive: the code is upper-cased before matching the
// stored (upper-case) value. Returns [ErrCampaignNotFound] when no row
// matches.
func (r *campaignRepository) GetCampaignByInviteCode(ctx context.Context, code string) (models.Campaign, error) {
	return r.getCampaign(ctx, getCampaignByInviteCode, strings.ToUpper(code))
}

func (r *campaignRepository) getCampaign(ctx context.Context, query, arg string) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	var campaign models.Campaign
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := scanCampaign(row, &campaign); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Campaign{}, ErrCampaignNotFound
		}

		log.Err(err).Str("func", "*campaignRepository.getCampaign").Msg("error scanning campaign row")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return campaign, nil
}

// GetCampaignsByIDs retrieves every campaign whose id is in ids, in no
// particular order.
func (r *campaignRepository) GetCampaignsByIDs(ctx context.Context, ids []string) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Campaign{}, nil
	}

	query, args, err := sq.
		Select("id", "name", "description", "invite_code", "owner_id", "image_url", "status", "created_at").
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.GetCampaignsByIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.GetCampaignsByIDs").Int("ids count", len(ids)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0, len(ids))

	for rows.Next() {
		var campaign models.Campaign

		if scanErr := scanCampaign(rows, &campaign); scanErr != nil {
			log.Err(scanErr).Str("func", "*campaignRepository.GetCampaignsByIDs").Msg("failed to scan campaign row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		campaigns = append(campaigns, campaign)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*campaignRepository.GetCampaignsByIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return campaigns, nil
}

// UpdateCampaign applies a sparse patch to one campaign row. Only the fields
// the patch carries are written: Name and Status are skipped when empty,
// Description and ImageURL are applied whenever present, including an
// explicit empty string. An empty patch is a no-op.
func (r *campaignRepository) UpdateCampaign(ctx context.Context, id string, patch models.CampaignPatch) error {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return nil
	}

	builder := sq.
		Update(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	if patch.Name != nil && *patch.Name != "" {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		builder = builder.Set("image_url", *patch.ImageURL)
	}
	if patch.Status != nil && *patch.Status != "" {
		builder = builder.Set("status", *patch.Status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.UpdateCampaign").Str("campaign_id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*campaignRepository.UpdateCampaign").Str("campaign_id", id).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// DeleteCampaign removes one campaign row unconditionally. Dependent
// memberships and items are removed by the database-level cascade, not by
// this layer.
func (r *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteCampaign, id); err != nil {
		log.Err(err).Str("func", "*campaignRepository.DeleteCampaign").Str("campaign_id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by the scan
// helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner, c *models.Campaign) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.InviteCode, &c.OwnerID, &c.ImageURL, &c.Status, &c.CreatedAt)
}
