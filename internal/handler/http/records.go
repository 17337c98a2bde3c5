package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/service"
	"github.com/geovision-ai/miner-sync/internal/validators"
	"github.com/geovision-ai/miner-sync/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.Records.Records())
}

// addRecord is the record-creation entry point exposed to callers. The
// storage-full flag is advisory, so the refusal lives here rather than in
// the record service itself.
func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.services.Records.StorageFull() {
		writeError(w, r, http.StatusInsufficientStorage, "local storage is full, delete or sync records first")
		return
	}

	var req models.AddRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.services.Records.AddRecord(r.Context(), req.Type, req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrUnknownRecordType),
			errors.Is(err, validators.ErrEmptyPayload),
			errors.Is(err, service.ErrPayloadNotSerializable):
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Err(err).Msg("failed to add record")
			writeError(w, r, http.StatusInternalServerError, "failed to add record")
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, models.AddRecordResponse{ID: id})
}

func (h *Handler) removeRecords(w http.ResponseWriter, r *http.Request) {
	var req models.RemoveRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	h.services.Records.RemoveRecords(r.Context(), req.IDs)
	w.WriteHeader(http.StatusNoContent)
}
