package store

import (
	"context"

	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection. It is the single store-layer dependency of the service layer.
type Repositories struct {
	UserRepository       UserRepository
	ProfileRepository    ProfileRepository
	CampaignRepository   CampaignRepository
	MembershipRepository MembershipRepository
	ItemRepository       ItemRepository
}

// NewRepositories connects to PostgreSQL using cfg and constructs every
// repository on top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, nil, err
	}

	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		ProfileRepository:    NewProfileRepository(db, log),
		CampaignRepository:   NewCampaignRepository(db, log),
		MembershipRepository: NewMembershipRepository(db, log),
		ItemRepository:       NewItemRepository(db, log),
	}, db, nil
}
