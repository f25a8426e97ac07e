package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"businessghat/internal/domain"
)

type lumaExportRepository struct {
	DB *sql.DB
}

// NewLumaExportRepository returns a FeedSource reading the latest export
// snapshot stored by the sync job in luma_event_exports.
func NewLumaExportRepository(db *sql.DB) domain.FeedSource {
	return &lumaExportRepository{
		DB: db,
	}
}

func (r *lumaExportRepository) Load(ctx context.Context) ([]byte, error) {
	query := `
		SELECT payload
		FROM luma_event_exports
		ORDER BY exported_at DESC
		LIMIT 1
	`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no luma export stored: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query luma export: %w", err)
	}
	return payload, nil
}
