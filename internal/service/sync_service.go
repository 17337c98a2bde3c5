package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/geovision-ai/miner-sync/internal/adapter"
	"github.com/geovision-ai/miner-sync/internal/connectivity"
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/models"
)

type syncService struct {
	records RecordService
	adapter adapter.SyncServerAdapter
	monitor connectivity.Monitor
	logger  *logger.Logger

	mu         sync.Mutex
	syncing    bool
	progress   int
	lastSyncAt *time.Time
}

// NewSyncService builds the sync engine and subscribes it to connectivity
// transitions: every offline-to-online transition fires exactly one sync
// attempt, which the entry guard turns into a no-op when nothing is pending.
func NewSyncService(
	records RecordService,
	serverAdapter adapter.SyncServerAdapter,
	monitor connectivity.Monitor,
	log *logger.Logger,
) SyncService {
	s := &syncService{
		records: records,
		adapter: serverAdapter,
		monitor: monitor,
		logger:  log,
	}

	monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		if err := s.Sync(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("reconnect sync attempt failed")
		}
	})

	return s
}

func (s *syncService) Sync(ctx context.Context) error {
	// Guard and state entry are one atomic step so no two attempts can
	// ever be in flight at once.
	s.mu.Lock()
	if s.syncing || !s.monitor.Online() || s.records.PendingItems() == 0 {
		s.mu.Unlock()
		return nil
	}
	s.syncing = true
	s.progress = 0
	s.mu.Unlock()

	snapshot := s.records.UnsyncedSnapshot()
	s.logger.Info().Int("records", len(snapshot)).Msg("sync started")

	err := s.adapter.UploadBatch(ctx, snapshot)
	if err != nil {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()

		s.logger.Warn().Err(err).Int("records", len(snapshot)).Msg("sync failed, pending records preserved")
		return fmt.Errorf("upload sync batch: %w", err)
	}

	// Only the snapshot taken at entry is reconciled; records added while
	// the batch was in flight stay pending for the next cycle.
	ids := make([]string, 0, len(snapshot))
	for _, r := range snapshot {
		ids = append(ids, r.ID)
	}
	s.records.MarkSynced(ctx, ids)

	now := time.Now()
	s.mu.Lock()
	s.syncing = false
	s.progress = 100
	s.lastSyncAt = &now
	s.mu.Unlock()

	s.logger.Info().Int("records", len(ids)).Time("at", now).Msg("sync completed")
	return nil
}

func (s *syncService) Status() models.SyncStatus {
	s.mu.Lock()
	syncing := s.syncing
	progress := s.progress
	lastSyncAt := s.lastSyncAt
	s.mu.Unlock()

	return models.SyncStatus{
		IsOnline:            s.monitor.Online(),
		Syncing:             syncing,
		LastSyncAt:          lastSyncAt,
		PendingItems:        s.records.PendingItems(),
		TotalSizeBytes:      s.records.TotalSizeBytes(),
		MaxStorageSizeBytes: s.records.MaxStorageSizeBytes(),
		SyncProgressPercent: progress,
		StorageFull:         s.records.StorageFull(),
	}
}
