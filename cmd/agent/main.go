package main

import (
	"context"
	"fmt"

	"github.com/geovision-ai/miner-sync/internal/adapter"
	"github.com/geovision-ai/miner-sync/internal/agent"
	"github.com/geovision-ai/miner-sync/internal/config"
	"github.com/geovision-ai/miner-sync/internal/connectivity"
	handlerhttp "github.com/geovision-ai/miner-sync/internal/handler/http"
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/service"
	"github.com/geovision-ai/miner-sync/internal/store"
	"github.com/geovision-ai/miner-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("miner-sync-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPSyncAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		HashKey: cfg.Adapter.HashKey,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	monitor := connectivity.NewMonitor(context.Background(), serverAdapter, cfg.Workers.ProbeInterval, log)

	services := service.NewServices(storages, serverAdapter, monitor, cfg.Agent, log)

	buildInfo := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if cfg.App.Version != "" {
		buildInfo.Version = cfg.App.Version
	}
	handler := handlerhttp.NewHandler(services, buildInfo, log)

	app := agent.NewApp(cfg, services, monitor, handler, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
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
