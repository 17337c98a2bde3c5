package service

import (
	"context"
	"sync"
	"time"

	"github.com/geovision-ai/miner-sync/internal/logger"
)

type syncJob struct {
	syncService SyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that calls syncService.Sync on a ticker. The
// job is idle until Start is called.
func NewSyncJob(syncService SyncService, log *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that attempts a sync every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.syncService.Sync(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("periodic sync attempt failed")
				}
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
