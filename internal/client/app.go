// Package client assembles the terminal client runtime: the session restore
// flow, the background refresh worker, and the interactive UI loop.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/tui"
	"github.com/lmiranda/quest-keeper/internal/workers"
	"github.com/lmiranda/quest-keeper/models"
)

// App is the client application: it decides whether the saved session is
// still usable, drives the login flow when it is not, and keeps the
// background refresh worker alive for the duration of the main loop.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	worker   *workers.CampaignRefreshWorker
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, worker *workers.CampaignRefreshWorker, log *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		worker:   worker,
		logger:   log,
	}
}

// Run executes one full client session: restore or sign in, then the main
// loop. A logout restarts the cycle from the login flow.
func (a *App) Run(ctx context.Context) error {
	var user models.User

	needLogin := false

	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		user, needLogin = a.refreshRestoredUser(ctx, session.User)
	case errors.Is(err, store.ErrLocalSessionNotFound):
		needLogin = true
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	if needLogin {
		user, err = a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}
	}

	a.worker.Run()
	defer a.worker.Stop()

	logout, err := a.ui.MainLoop(ctx, user)
	if err != nil {
		return fmt.Errorf("main loop: %w", err)
	}
	if logout {
		a.worker.Stop()
		return a.Run(ctx)
	}

	return nil
}

// refreshRestoredUser swaps the locally saved user snapshot for the server's
// current record. A rejected token means the saved session is stale, so the
// login flow must run; any other failure only logs and keeps the snapshot,
// which is good enough to start with.
func (a *App) refreshRestoredUser(ctx context.Context, snapshot models.User) (user models.User, needLogin bool) {
	fresh, err := a.services.AuthService.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, service.ErrTokenIsExpired) {
			a.logger.Info().Str("func", "refreshRestoredUser").Msg("saved session is stale, sign-in required")
			if signOutErr := a.services.AuthService.SignOut(ctx); signOutErr != nil {
				a.logger.Warn().Err(signOutErr).Str("func", "refreshRestoredUser").Msg("could not clear stale session")
			}
			return models.User{}, true
		}
		a.logger.Warn().Err(err).Str("func", "refreshRestoredUser").Msg("could not refresh restored user, using local snapshot")
		return snapshot, false
	}
	return fresh, false
}
