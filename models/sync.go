package models

import "time"

// SyncStatus is a point-in-time view of the sync agent. It is derived from
// the record collection and the connectivity monitor and is never persisted.
type SyncStatus struct {
	IsOnline            bool       `json:"is_online"`
	Syncing             bool       `json:"syncing"`
	LastSyncAt          *time.Time `json:"last_sync_at,omitempty"`
	PendingItems        int        `json:"pending_items"`
	TotalSizeBytes      int64      `json:"total_size_bytes"`
	MaxStorageSizeBytes int64      `json:"max_storage_size_bytes"`
	SyncProgressPercent int        `json:"sync_progress_percent"`
	StorageFull         bool       `json:"storage_full"`
}
