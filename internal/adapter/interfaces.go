package adapter

import (
	"context"

	"github.com/geovision-ai/miner-sync/models"
)

// SyncServerAdapter is the remote collaborator the sync engine pushes
// unsynced records to. The contract is all-or-nothing per attempt: a single
// batch call either succeeds for every record in it or fails as a whole.
type SyncServerAdapter interface {
	// UploadBatch sends the given records to the remote data API in one
	// request. Returns nil only when the server accepted the full batch.
	UploadBatch(ctx context.Context, records []models.OfflineRecord) error

	// Ping probes the remote health endpoint. A nil return means the
	// server is reachable; the connectivity monitor treats it as the
	// host environment's online signal.
	Ping(ctx context.Context) error
}
