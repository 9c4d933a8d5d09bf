// Package workers provides abstractions for managing and running
// background workers in the client application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the campaign refresh worker that keeps the
// dashboard data warm.
package workers

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// CampaignSource is the slice of the campaign service the refresh worker
// needs: a way to re-fetch the signed-in user's campaign list.
type CampaignSource interface {
	Campaigns(ctx context.Context) (models.CampaignList, error)
}
