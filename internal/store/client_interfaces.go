package store

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the client's local authentication state between
// runs.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
