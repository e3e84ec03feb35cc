// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type localEventRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalEventRepository constructs a [LocalEventRepository] over db.
func NewLocalEventRepository(db *DB, logger *logger.Logger) LocalEventRepository {
	return &localEventRepository{
		DB:     db,
		logger: logger,
	}
}

// GetLastEventID returns ErrEventIDNotFound when the share was never synced.
func (r *localEventRepository) GetLastEventID(ctx context.Context, shareID string) (string, error) {
	log := logger.FromContext(ctx)

	var eventID string
	err := r.DB.QueryRowContext(ctx, getLastEventID, shareID).Scan(&eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrEventIDNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localEventRepository.GetLastEventID").
			Str("share_id", shareID).
			Msg("failed to get last event id")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return eventID, nil
}

func (r *localEventRepository) SetLastEventID(ctx context.Context, shareID, eventID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setLastEventID, shareID, eventID); err != nil {
		log.Err(err).
			Str("func", "localEventRepository.SetLastEventID").
			Str("share_id", shareID).
			Str("event_id", eventID).
			Msg("failed to store last event id")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
