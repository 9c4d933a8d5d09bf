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
)

// itemColumns lists the shared columns every item table carries, in scan
// order. Kind-specific columns are appended by extraColumns.
var itemColumns = []string{
	"id", "campaign_id", "name", "description", "image_url", "is_visible_to_players", "created_at",
}

// extraColumns returns the kind-specific tail columns of the backing table.
func extraColumns(kind models.ItemKind) []string {
	switch kind {
	case models.KindCharacter:
		return []string{"status", "character_type", "history"}
	case models.KindLocation:
		return []string{"parent_id"}
	case models.KindInfo:
		return []string{"category"}
	case models.KindMonster:
		return []string{"difficulty"}
	}
	return nil
}

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository]. A single implementation serves all five item kinds; the
// kind picks the table and its extra columns.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// ListItems returns every item of one kind in one campaign, newest first.
func (r *itemRepository) ListItems(ctx context.Context, kind models.ItemKind, campaignID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	columns := append(append([]string{}, itemColumns...), extraColumns(kind)...)

	query, args, err := sq.
		Select(columns...).
		From(kind.TableName()).
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Str("kind", string(kind)).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Str("kind", string(kind)).Str("campaign_id", campaignID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)

	for rows.Next() {
		var item models.Item

		if scanErr := scanItem(rows, kind, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.ListItems").Str("kind", string(kind)).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.ListItems").Str("kind", string(kind)).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// SaveItem inserts or updates one item and returns the stored row. An item
// without an ID is inserted and receives a server-assigned id and creation
// timestamp; an item carrying an ID is upserted keyed by it, so callers can
// save a fetched item back without caring whether it still exists.
func (r *itemRepository) SaveItem(ctx context.Context, kind models.ItemKind, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	columns := []string{"campaign_id", "name", "description", "image_url", "is_visible_to_players"}
	values := []any{item.CampaignID, item.Name, item.Description, item.ImageURL, item.IsVisibleToPlayers}

	switch kind {
	case models.KindCharacter:
		columns = append(columns, "status", "character_type", "history")
		values = append(values, item.Status, item.CharacterType, item.History)
	case models.KindLocation:
		columns = append(columns, "parent_id")
		values = append(values, nullableID(item.ParentID))
	case models.KindInfo:
		columns = append(columns, "category")
		values = append(values, item.Category)
	case models.KindMonster:
		columns = append(columns, "difficulty")
		values = append(values, item.Difficulty)
	}

	builder := sq.
		Insert(kind.TableName()).
		PlaceholderFormat(sq.Dollar)

	if item.ID != "" {
		// campaign_id (columns[0]) stays out of the SET list and guards the
		// update instead, so an existing id cannot be pulled into another
		// campaign. A conflicting row of a foreign campaign filters the
		// update out, RETURNING yields no row and the save reports not found.
		builder = builder.
			Columns(append([]string{"id"}, columns...)...).
			Values(append([]any{item.ID}, values...)...).
			Suffix("ON CONFLICT (id) DO UPDATE SET " + upsertAssignments(columns[1:]) +
				" WHERE " + kind.TableName() + ".campaign_id = EXCLUDED.campaign_id")
	} else {
		builder = builder.
			Columns(columns...).
			Values(values...)
	}

	returning := append(append([]string{}, itemColumns...), extraColumns(kind)...)
	builder = builder.Suffix("RETURNING " + strings.Join(returning, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.SaveItem").Str("kind", string(kind)).Msg("failed to build query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var saved models.Item
	if scanErr := scanItem(row, kind, &saved); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(scanErr).Str("func", "*itemRepository.SaveItem").Str("kind", string(kind)).Str("campaign_id", item.CampaignID).Msg("error scanning saved item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return saved, nil
}

// GetItem returns one item by id within one campaign. Returns
// [ErrItemNotFound] when no row matches.
func (r *itemRepository) GetItem(ctx context.Context, kind models.ItemKind, campaignID, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	columns := append(append([]string{}, itemColumns...), extraColumns(kind)...)

	query, args, err := sq.
		Select(columns...).
		From(kind.TableName()).
		Where(sq.Eq{"id": id, "campaign_id": campaignID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItem").Str("kind", string(kind)).Msg("failed to build query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var item models.Item
	if scanErr := scanItem(row, kind, &item); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		log.Err(scanErr).Str("func", "*itemRepository.GetItem").Str("kind", string(kind)).Str("item_id", id).Msg("error scanning item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return item, nil
}

// DeleteItem removes one item by id within one campaign. Returns
// [ErrItemNotFound] when no row matches.
func (r *itemRepository) DeleteItem(ctx context.Context, kind models.ItemKind, campaignID, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Delete(kind.TableName()).
		Where(sq.Eq{"id": id, "campaign_id": campaignID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Str("kind", string(kind)).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Str("kind", string(kind)).Str("item_id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// upsertAssignments renders the "col = EXCLUDED.col" list of an
// ON CONFLICT ... DO UPDATE clause.
func upsertAssignments(columns []string) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = EXCLUDED." + col
	}
	return strings.Join(assignments, ", ")
}

// nullableID maps an empty id string to SQL NULL for nullable uuid columns.
func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func scanItem(row rowScanner, kind models.ItemKind, item *models.Item) error {
	dest := []any{
		&item.ID, &item.CampaignID, &item.Name, &item.Description,
		&item.ImageURL, &item.IsVisibleToPlayers, &item.CreatedAt,
	}

	var parentID sql.NullString

	switch kind {
	case models.KindCharacter:
		dest = append(dest, &item.Status, &item.CharacterType, &item.History)
	case models.KindLocation:
		dest = append(dest, &parentID)
	case models.KindInfo:
		dest = append(dest, &item.Category)
	case models.KindMonster:
		dest = append(dest, &item.Difficulty)
	}

	if err := row.Scan(dest...); err != nil {
		return err
	}

	if kind == models.KindLocation && parentID.Valid {
		item.ParentID = parentID.String
	}

	return nil
}
