package service

import (
	"context"
	"time"

	"github.com/geovision-ai/miner-sync/models"
)

// RecordService owns the in-memory record collection and the incremental
// aggregate statistics over it. It is the sole writer of the persisted
// collection; every other component mutates records only through these
// operations.
type RecordService interface {
	// AddRecord validates the input, constructs an OfflineRecord with a
	// fresh id and the serialized payload size, appends it, and persists
	// the collection. Returns the new record's id.
	//
	// Adding never triggers a sync; sync is manual or connectivity-driven.
	// Persistence failures are logged, not returned: the in-memory
	// collection stays authoritative for the session.
	AddRecord(ctx context.Context, recordType string, payload any) (string, error)

	// RemoveRecords removes every matching record in one operation and
	// persists the result. Unknown ids are skipped, making the call
	// idempotent per id.
	RemoveRecords(ctx context.Context, ids []string)

	// Records returns a copy of the current collection.
	Records() []models.OfflineRecord

	// UnsyncedSnapshot returns a copy of all records still pending
	// upload, taken atomically.
	UnsyncedSnapshot() []models.OfflineRecord

	// MarkSynced flips the synced flag for the given ids and persists.
	// Records added after the ids were snapshotted are untouched.
	MarkSynced(ctx context.Context, ids []string)

	// PendingItems is the count of records with synced == false.
	PendingItems() int

	// TotalSizeBytes is the sum of SizeBytes over all held records.
	TotalSizeBytes() int64

	// MaxStorageSizeBytes is the configured local storage bound.
	MaxStorageSizeBytes() int64

	// StorageFull reports whether usage has crossed 90% of the configured
	// maximum. Advisory: entry points exposed to callers must refuse new
	// records while it is set, AddRecord itself does not.
	StorageFull() bool
}

// SyncService drives outbound synchronization of pending records.
type SyncService interface {
	// Sync pushes the current unsynced snapshot to the remote data API.
	// It is a silent no-op unless the agent is online, not already
	// syncing, and has pending records. On success every snapshot record
	// is marked synced; on failure nothing is mutated and the transport
	// error is returned so the caller can surface it.
	Sync(ctx context.Context) error

	// Status reports the current sync state of the agent.
	Status() models.SyncStatus
}

// SelectionService tracks the set of record ids selected for bulk deletion.
type SelectionService interface {
	// Select adds id to the selection. Ids not present in the collection
	// are ignored.
	Select(id string)

	// Deselect removes id from the selection.
	Deselect(id string)

	// SelectAll selects every currently-held record id.
	SelectAll()

	// ClearSelection empties the selection.
	ClearSelection()

	// Selected returns the currently selected ids.
	Selected() []string

	// DeleteSelected removes all selected records through the record
	// service, then clears the selection.
	DeleteSelected(ctx context.Context)
}

// SyncJob is a background worker that periodically re-attempts a sync so
// records captured while the agent stayed online do not wait for the next
// reconnect.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}
