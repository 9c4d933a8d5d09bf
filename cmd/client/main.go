package main

import (
	"context"
	"fmt"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/client"
	"github.com/lmiranda/quest-keeper/internal/config"
	"github.com/lmiranda/quest-keeper/internal/logger"
	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/signal"
	"github.com/lmiranda/quest-keeper/internal/store"
	"github.com/lmiranda/quest-keeper/internal/tui"
	"github.com/lmiranda/quest-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("quest-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local session storage")
	}
	defer db.Close()

	bus := signal.NewBus()
	sessions := store.NewSessionRepository(db, log)
	services := service.NewClientServices(sessions, serverAdapter, bus, log)

	worker := workers.NewCampaignRefreshWorker(ctx, services.CampaignService, bus, cfg.Workers.RefreshInterval, log)
	ui := tui.New(services, bus, cfg.App.Version)

	app := client.NewApp(services, ui, worker, log)
	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
