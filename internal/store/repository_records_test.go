package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovision-ai/miner-sync/internal/config"
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "offline.db")
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func sampleRecords() []models.OfflineRecord {
	return []models.OfflineRecord{
		{
			ID:        "rec-1",
			Type:      models.DrillHole,
			Payload:   json.RawMessage(`{"depth_m":120,"azimuth":45}`),
			CreatedAt: 1700000000000,
			Synced:    false,
			SizeBytes: 26,
		},
		{
			ID:        "rec-2",
			Type:      models.GISLayer,
			Payload:   json.RawMessage(`{"name":"faults"}`),
			CreatedAt: 1700000001000,
			Synced:    true,
			SizeBytes: 17,
		},
	}
}

// ── Round-trip ───────────────────────────────────────────────────────────────

func TestRecordRepository_SaveLoad_RoundTrip(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	want := sampleRecords()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got, "order and content must survive the round-trip")
}

func TestRecordRepository_Save_OverwritesPreviousState(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecords()))
	require.NoError(t, repo.Save(ctx, sampleRecords()[:1]))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "rec-1", got[0].ID)
}

func TestRecordRepository_Save_EmptyCollection(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleRecords()))
	require.NoError(t, repo.Save(ctx, nil))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordRepository_Load_NoPriorData(t *testing.T) {
	repo := NewRecordRepository(newTestDB(t), logger.Nop())

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordRepository_Load_CorruptBlobTreatedAsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecordRepository(db, logger.Nop())
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO offline_kv (key, value) VALUES (?, ?)`,
		"offline_records", []byte("{not json"),
	)
	require.NoError(t, err)

	got, loadErr := repo.Load(ctx)
	require.NoError(t, loadErr, "a corrupt blob must degrade to empty, not fail")
	assert.Empty(t, got)
}

// ── Error paths (sqlmock) ────────────────────────────────────────────────────

func newMockRepo(t *testing.T) (RecordStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRecordRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func TestRecordRepository_Load_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT value FROM offline_kv").WillReturnError(assert.AnError)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_Save_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO offline_kv").WillReturnError(assert.AnError)

	err := repo.Save(context.Background(), sampleRecords())
	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
