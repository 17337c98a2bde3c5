package http

import (
	"net/http"

	"github.com/geovision-ai/miner-sync/internal/logger"
)

// triggerSync runs a manual sync attempt. A guard no-op (offline, already
// syncing, nothing pending) still answers 200 with the current status; a
// transport failure answers 502 so the caller can show a failed-sync signal.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Sync.Sync(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("manual sync failed")
		writeError(w, r, http.StatusBadGateway, "sync failed, records preserved for retry")
		return
	}

	writeJSON(w, r, http.StatusOK, h.services.Sync.Status())
}
