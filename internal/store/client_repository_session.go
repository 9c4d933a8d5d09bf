package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/models"
)

// ErrLocalSessionNotFound is returned when no session has been saved yet, or
// the session was cleared by a sign-out.
var ErrLocalSessionNotFound = errors.New("local session not found")

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] on top of the local
// SQLite database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveSession,
		session.Token,
		session.User.ID,
		session.User.Email,
		session.User.Name,
		session.User.Avatar,
		session.SavedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("user_id", session.User.ID).
			Msg("failed to persist local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.DB.QueryRowContext(ctx, getSession)

	err := row.Scan(
		&session.Token,
		&session.User.ID,
		&session.User.Email,
		&session.User.Name,
		&session.User.Avatar,
		&session.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}

		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan local session row")
		return models.Session{}, fmt.Errorf("failed to scan local session row: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to clear local session")
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}
