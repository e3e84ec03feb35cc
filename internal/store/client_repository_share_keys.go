// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type localShareKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalShareKeyRepository constructs a [LocalShareKeyRepository] over db.
func NewLocalShareKeyRepository(db *DB, logger *logger.Logger) LocalShareKeyRepository {
	return &localShareKeyRepository{
		DB:     db,
		logger: logger,
	}
}

// GetShareKeys returns the cached keys of shareID ordered by rotation. An
// empty slice means nothing is cached.
func (r *localShareKeyRepository) GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectShareKeysQuery(shareID)
	if err != nil {
		log.Err(err).Str("func", "localShareKeyRepository.GetShareKeys").Str("share_id", shareID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localShareKeyRepository.GetShareKeys").Str("share_id", shareID).Msg("failed to execute query for getting share keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.ShareKey, 0, 4)
	for rows.Next() {
		var k models.ShareKey
		if scanErr := rows.Scan(&k.ShareID, &k.KeyRotation, &k.EncryptedKey, &k.UserKeyID, &k.CreateTime); scanErr != nil {
			log.Err(scanErr).Str("func", "localShareKeyRepository.GetShareKeys").Str("share_id", shareID).Msg("failed to scan share key row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, k)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localShareKeyRepository.GetShareKeys").Str("share_id", shareID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return keys, nil
}

// ReplaceShareKeys drops the cached keys of shareID and stores keys instead.
func (r *localShareKeyRepository) ReplaceShareKeys(ctx context.Context, shareID string, keys []models.ShareKey) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, buildErr := buildDeleteByShareQuery("share_keys", []string{shareID})
		if err := execBuilt(ctx, tx, query, args, buildErr); err != nil {
			return err
		}

		if len(keys) == 0 {
			return nil
		}

		query, args, buildErr = buildInsertShareKeysQuery(keys)
		return execBuilt(ctx, tx, query, args, buildErr)
	})
	if err != nil {
		log.Err(err).
			Str("func", "localShareKeyRepository.ReplaceShareKeys").
			Str("share_id", shareID).
			Int("keys", len(keys)).
			Msg("failed to replace share keys")
		return err
	}

	return nil
}
