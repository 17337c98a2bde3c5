package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/store"
	"github.com/geovision-ai/miner-sync/internal/validators"
	"github.com/geovision-ai/miner-sync/models"
)

// storageFullThreshold is the usage fraction at which the storage-full flag
// raises, expressed in integer tenths (usage*10 >= max*9 means usage >= 90%).
const storageFullThresholdTenths = 9

type recordService struct {
	localStore store.RecordStore
	validator  validators.RecordValidator
	ids        IDGenerator
	maxSize    int64
	logger     *logger.Logger

	mu        sync.Mutex
	records   []models.OfflineRecord
	totalSize int64
	pending   int
}

// NewRecordService builds the record lifecycle manager on top of the local
// blob store. The persisted collection is loaded once at construction; a
// load failure is logged and the service starts with an empty collection
// rather than failing, so a corrupt local cache never blocks field capture.
func NewRecordService(
	localStore store.RecordStore,
	validator validators.RecordValidator,
	ids IDGenerator,
	maxStorageSizeBytes int64,
	log *logger.Logger,
) RecordService {
	s := &recordService{
		localStore: localStore,
		validator:  validator,
		ids:        ids,
		maxSize:    maxStorageSizeBytes,
		logger:     log,
	}

	records, err := localStore.Load(context.Background())
	if err != nil {
		log.Err(err).Msg("failed to load persisted records, starting empty")
		records = []models.OfflineRecord{}
	}

	s.records = records
	for _, r := range records {
		s.totalSize += r.SizeBytes
		if !r.Synced {
			s.pending++
		}
	}

	return s
}

func (s *recordService) AddRecord(ctx context.Context, recordType string, payload any) (string, error) {
	if err := s.validator.ValidateNewRecord(recordType, payload); err != nil {
		return "", fmt.Errorf("validate new record: %w", err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPayloadNotSerializable, err)
	}

	record := models.OfflineRecord{
		ID:        s.ids.Generate(),
		Type:      recordType,
		Payload:   raw,
		CreatedAt: time.Now().UnixMilli(),
		Synced:    false,
		SizeBytes: int64(len(raw)),
	}

	s.mu.Lock()
	s.records = append(s.records, record)
	s.totalSize += record.SizeBytes
	s.pending++
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.Debug().
		Str("record_id", record.ID).
		Str("type", recordType).
		Int64("size_bytes", record.SizeBytes).
		Msg("offline record added")

	return record.ID, nil
}

func (s *recordService) RemoveRecords(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}

	toRemove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		toRemove[id] = struct{}{}
	}

	s.mu.Lock()
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if _, ok := toRemove[r.ID]; !ok {
			kept = append(kept, r)
			continue
		}
		removed++
		s.totalSize -= r.SizeBytes
		if !r.Synced {
			s.pending--
		}
	}
	s.records = kept
	if removed > 0 {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("offline records removed")
	}
}

func (s *recordService) Records() []models.OfflineRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.OfflineRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *recordService) UnsyncedSnapshot() []models.OfflineRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.OfflineRecord
	for _, r := range s.records {
		if !r.Synced {
			out = append(out, r)
		}
	}
	return out
}

func (s *recordService) MarkSynced(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}

	confirmed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		confirmed[id] = struct{}{}
	}

	s.mu.Lock()
	for i := range s.records {
		if _, ok := confirmed[s.records[i].ID]; !ok {
			continue
		}
		s.records[i].Synced = true
	}

	// Recompute rather than decrement: a confirmed id may already have
	// been removed locally while the batch was in flight.
	s.pending = 0
	for _, r := range s.records {
		if !r.Synced {
			s.pending++
		}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()
}

func (s *recordService) PendingItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *recordService) TotalSizeBytes() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSize
}

func (s *recordService) MaxStorageSizeBytes() int64 {
	return s.maxSize
}

func (s *recordService) StorageFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSize*10 >= s.maxSize*storageFullThresholdTenths
}

// persistLocked writes the collection through to the local store. Must be
// called with s.mu held. Write failures are logged and swallowed: the
// in-memory collection remains the source of truth for the session.
func (s *recordService) persistLocked(ctx context.Context) {
	if err := s.localStore.Save(ctx, s.records); err != nil {
		s.logger.Err(err).Int("records", len(s.records)).Msg("failed to persist offline records")
	}
}
