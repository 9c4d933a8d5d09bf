package service

import (
	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/internal/store"
)

// ClientServices bundles every client-side service behind one handle for the
// application runtime and the terminal UI.
type ClientServices struct {
	AuthService     ClientAuthService
	CampaignService ClientCampaignService
	ItemService     ClientItemService
}

// NewClientServices wires the client services on top of the local session
// store, the server adapter, and the notification bus.
func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, bus *signal.Bus, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(sessions, serverAdapter, bus, log),
		CampaignService: NewClientCampaignService(serverAdapter, log),
		ItemService:     NewClientItemService(serverAdapter, log),
	}
}
