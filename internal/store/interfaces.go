package store

import (
	"context"

	"github.com/geovision-ai/miner-sync/models"
)

// RecordStore durably persists the full offline-record collection as a
// single serialized blob under one fixed key. There are no partial writes:
// every Save overwrites the whole collection and every Load returns it
// in full, in the order it was saved.
type RecordStore interface {
	// Load returns the persisted collection. A missing key or a blob that
	// fails to deserialize yields an empty collection and a logged
	// warning, never an error: offline capability degrades gracefully
	// instead of crashing. Only infrastructure failures (the query
	// itself failing) are returned as errors.
	Load(ctx context.Context) ([]models.OfflineRecord, error)

	// Save serializes records and overwrites the persisted collection.
	// After a successful Save, Load returns exactly this state even
	// across process restarts.
	Save(ctx context.Context, records []models.OfflineRecord) error
}
