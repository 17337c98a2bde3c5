package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovision-ai/miner-sync/internal/utils"
	"github.com/geovision-ai/miner-sync/models"
)

func testRecords() []models.OfflineRecord {
	return []models.OfflineRecord{
		{ID: "rec-1", Type: models.DrillHole, Payload: json.RawMessage(`{"depth_m":80}`), SizeBytes: 14},
		{ID: "rec-2", Type: models.Lidar, Payload: json.RawMessage(`{"points":2048}`), SizeBytes: 15},
	}
}

// ── UploadBatch ──────────────────────────────────────────────────────────────

func TestUploadBatch_Success(t *testing.T) {
	var got models.UploadRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/data/sync", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL, HashKey: "testhashkey"})
	err := a.UploadBatch(context.Background(), testRecords())
	require.NoError(t, err)

	assert.Equal(t, 2, got.Length)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "rec-1", got.Records[0].ID)

	wantPayload, err := json.Marshal(testRecords())
	require.NoError(t, err)
	assert.Equal(t, utils.HashBytes(wantPayload, "testhashkey"), got.Hash)
}

func TestUploadBatch_NoHashKey_UnsignedBatch(t *testing.T) {
	var got models.UploadRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, a.UploadBatch(context.Background(), testRecords()))
	assert.Empty(t, got.Hash)
}

func TestUploadBatch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	err := a.UploadBatch(context.Background(), testRecords())
	require.ErrorIs(t, err, ErrServerUnavailable)
}

func TestUploadBatch_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	err := a.UploadBatch(context.Background(), testRecords())
	require.ErrorIs(t, err, ErrSyncRejected)
}

func TestUploadBatch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed on purpose

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	err := a.UploadBatch(context.Background(), testRecords())
	require.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	assert.NoError(t, a.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := NewHTTPSyncAdapter(HTTPClientConfig{BaseURL: srv.URL})
	err := a.Ping(context.Background())
	require.ErrorIs(t, err, ErrServerUnavailable)
}
