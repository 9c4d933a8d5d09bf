package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository], serving the "profiles" projection table.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertProfile writes the denormalized profile row, replacing any existing
// snapshot for the same user id.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertProfile, profile.ID, profile.Email, profile.Name, profile.Avatar)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Str("user_id", profile.ID).Msg("error upserting profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetProfile retrieves one profile row by user id. Returns
// [ErrProfileNotFound] when the projection has no snapshot for the user.
func (r *profileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, getProfile, id)

	if err := row.Scan(&profile.ID, &profile.Email, &profile.Name, &profile.Avatar); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("user_id", id).Msg("error scanning profile row")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// GetProfilesByIDs retrieves the profile rows whose id is in ids. Users with
// no snapshot are simply absent from the result; callers join in memory and
// treat the gap as a missing profile, not an error.
func (r *profileRepository) GetProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return []models.Profile{}, nil
	}

	query, args, err := sq.
		Select("id", "email", "name", "avatar").
		From(models.Profile{}.TableName()).
		Where(sq.Eq{"id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfilesByIDs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfilesByIDs").Int("ids count", len(ids)).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, len(ids))

	for rows.Next() {
		var profile models.Profile

		if scanErr := rows.Scan(&profile.ID, &profile.Email, &profile.Name, &profile.Avatar); scanErr != nil {
			log.Err(scanErr).Str("func", "*profileRepository.GetProfilesByIDs").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		profiles = append(profiles, profile)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*profileRepository.GetProfilesByIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return profiles, nil
}
