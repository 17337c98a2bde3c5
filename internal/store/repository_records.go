package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/models"
)

// recordsKey is the fixed key under which the whole record collection is
// stored in the offline_kv table.
const recordsKey = "offline_records"

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository returns a RecordStore backed by the offline_kv table
// of the local SQLite database.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordStore {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) Load(ctx context.Context) ([]models.OfflineRecord, error) {
	query, args, err := sq.Select("value").
		From("offline_kv").
		Where(sq.Eq{"key": recordsKey}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "recordRepository.Load").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.OfflineRecord{}, nil
		}
		r.logger.Err(err).Str("func", "recordRepository.Load").Msg("failed to scan records blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var records []models.OfflineRecord
	if err = json.Unmarshal(blob, &records); err != nil {
		// A corrupt blob must not take the agent down: start empty,
		// the next Save rewrites the key.
		r.logger.Warn().Err(err).Str("key", recordsKey).Msg("persisted records are corrupt, starting with empty collection")
		return []models.OfflineRecord{}, nil
	}

	return records, nil
}

func (r *recordRepository) Save(ctx context.Context, records []models.OfflineRecord) error {
	if records == nil {
		records = []models.OfflineRecord{}
	}

	blob, err := json.Marshal(records)
	if err != nil {
		r.logger.Err(err).Str("func", "recordRepository.Save").Msg("failed to encode records")
		return fmt.Errorf("%w: %w", ErrEncodingRecords, err)
	}

	query, args, err := sq.Insert("offline_kv").
		Columns("key", "value").
		Values(recordsKey, blob).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "recordRepository.Save").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "recordRepository.Save").Int("records", len(records)).Msg("failed to persist records blob")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
