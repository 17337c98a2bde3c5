package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/geovision-ai/miner-sync/internal/utils"
	"github.com/geovision-ai/miner-sync/models"
)

// HTTPClientConfig configures the resty client of the HTTP sync adapter.
type HTTPClientConfig struct {
	BaseURL string
	HashKey string
	Timeout time.Duration
}

type httpSyncAdapter struct {
	client  *resty.Client
	hashKey string
}

// NewHTTPSyncAdapter returns a SyncServerAdapter that talks to the remote
// data API over HTTP. Request timeouts are owned by the underlying resty
// client; the sync engine never imposes its own.
func NewHTTPSyncAdapter(cfg HTTPClientConfig) SyncServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpSyncAdapter{client: cli, hashKey: cfg.HashKey}
}

func (h *httpSyncAdapter) UploadBatch(ctx context.Context, records []models.OfflineRecord) error {
	req := models.UploadRequest{
		Records: records,
		Length:  len(records),
		Hash:    computeTransportHash(records, h.hashKey),
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/data/sync")
	if err != nil {
		return fmt.Errorf("%w: upload request: %w", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpSyncAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/v1/health")
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

// computeTransportHash signs the serialized batch with the shared HMAC key
// so the server can verify the body was not corrupted in transit. Returns
// an empty string when no key is configured.
func computeTransportHash(records []models.OfflineRecord, hashKey string) string {
	if hashKey == "" || len(records) == 0 {
		return ""
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return ""
	}

	return utils.HashBytes(payload, hashKey)
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500:
		return fmt.Errorf("%w: server answered %d", ErrServerUnavailable, code)
	default:
		return fmt.Errorf("%w: server answered %d", ErrSyncRejected, code)
	}
}
