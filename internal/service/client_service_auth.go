package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	bus      *signal.Bus
	logger   *logger.Logger
}

// NewClientAuthService creates the client-side auth service. It owns the
// local session lifecycle: every successful sign-up/sign-in persists a
// session snapshot, and every change to the signed-in user is announced on
// the bus.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, bus *signal.Bus, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		bus:      bus,
		logger:   log,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, email, password, name string) (models.User, error) {
	user, err := a.adapter.Register(ctx, models.User{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register on server: %w", mapAdapterError(err))
	}

	a.persistSession(ctx, user)
	a.bus.Publish(signal.SessionChanged)

	return user, nil
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("login on server: %w", mapAdapterError(err))
	}

	a.persistSession(ctx, user)
	a.bus.Publish(signal.SessionChanged)

	return user, nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	a.adapter.SetToken("")
	a.bus.Publish(signal.SessionChanged)

	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if !session.Active() {
		return models.Session{}, store.ErrLocalSessionNotFound
	}

	a.adapter.SetToken(session.Token)

	return session, nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.User, error) {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch current user: %w", mapAdapterError(err))
	}

	a.persistSession(ctx, user)

	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, name, avatar string) (models.User, error) {
	user, err := a.adapter.UpdateProfile(ctx, name, avatar)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile on server: %w", mapAdapterError(err))
	}

	a.persistSession(ctx, user)
	a.bus.Publish(signal.SessionChanged)
	a.bus.Publish(signal.ProfileUpdated)

	return user, nil
}

func (a *clientAuthService) ServerVersion(ctx context.Context) string {
	version, err := a.adapter.GetServerVersion(ctx)
	if err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.ServerVersion").
			Msg("failed to fetch server version")
		return ""
	}

	return version
}

// persistSession refreshes the local session snapshot with the latest user
// record and the adapter's current token. A failed save is logged and
// swallowed: the in-memory session stays valid, only restore-after-restart
// is affected.
func (a *clientAuthService) persistSession(ctx context.Context, user models.User) {
	session := models.Session{
		Token:   a.adapter.Token(),
		User:    user,
		SavedAt: time.Now().UTC(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).
			Str("func", "clientAuthService.persistSession").
			Str("user_id", user.ID).
			Msg("failed to persist local session")
	}
}
