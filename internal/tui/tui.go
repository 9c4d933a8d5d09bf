package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/models"
)

// TUI is the terminal front end of the client. It runs in two phases: the
// login flow, which ends with a signed-in user, and the main loop, which
// ends on quit or logout.
type TUI struct {
	services *service.ClientServices
	bus      *signal.Bus
	version  string
}

func New(services *service.ClientServices, bus *signal.Bus, version string) *TUI {
	return &TUI{services: services, bus: bus, version: version}
}

// LoginFlow walks the welcome/login/register screens until the user signs
// in. Returns ErrUserQuit when the user closes the program instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newAuthAppModel(ctx, t.services, t.version)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.User{}, result.err
	}
	return result.resultUser, nil
}

// MainLoop runs the campaign screens for a signed-in user. The reported
// logout tells the caller whether to restart the login flow.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	refreshed, unsubscribe := t.bus.Subscribe(signal.CampaignsRefreshed)
	defer unsubscribe()

	model := newMainAppModel(ctx, t.services, user, refreshed)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
