package service

import (
	"github.com/geovision-ai/miner-sync/internal/adapter"
	"github.com/geovision-ai/miner-sync/internal/config"
	"github.com/geovision-ai/miner-sync/internal/connectivity"
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/store"
	"github.com/geovision-ai/miner-sync/internal/utils"
	"github.com/geovision-ai/miner-sync/internal/validators"
)

// Services groups every agent service into one value wired at startup and
// passed to the transport layer.
type Services struct {
	Records   RecordService
	Sync      SyncService
	Selection SelectionService
	SyncJob   SyncJob
}

func NewServices(
	storages *store.Storages,
	serverAdapter adapter.SyncServerAdapter,
	monitor connectivity.Monitor,
	cfg config.Agent,
	log *logger.Logger,
) *Services {
	records := NewRecordService(
		storages.Records,
		validators.NewRecordValidator(),
		utils.NewUUIDGenerator(),
		cfg.MaxStorageSizeBytes,
		log,
	)
	syncSvc := NewSyncService(records, serverAdapter, monitor, log)

	return &Services{
		Records:   records,
		Sync:      syncSvc,
		Selection: NewSelectionService(records),
		SyncJob:   NewSyncJob(syncSvc, log),
	}
}
