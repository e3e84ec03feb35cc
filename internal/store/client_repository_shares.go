// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// shareOwnedTables lists every table keyed by share_id, children first.
var shareOwnedTables = []string{"items", "share_keys", "share_events", "shares"}

type localShareRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalShareRepository constructs a [LocalShareRepository] over db.
func NewLocalShareRepository(db *DB, logger *logger.Logger) LocalShareRepository {
	return &localShareRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShare(row rowScanner) (models.Share, error) {
	var s models.Share
	var role string

	err := row.Scan(
		&s.ShareID,
		&s.VaultID,
		&s.AddressID,
		&s.TargetType,
		&s.Owner,
		&s.Shared,
		&role,
		&s.Primary,
		&s.Members,
		&s.CurrentKeyRotation,
		&s.CreateTime,
	)
	s.Role = models.ShareRole(role)

	return s, err
}

func (r *localShareRepository) GetAllShares(ctx context.Context) ([]models.Share, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSharesQuery()
	if err != nil {
		log.Err(err).Str("func", "localShareRepository.GetAllShares").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localShareRepository.GetAllShares").Msg("failed to execute query for getting shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.Share, 0, 8)
	for rows.Next() {
		share, scanErr := scanShare(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localShareRepository.GetAllShares").Msg("failed to scan share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shares = append(shares, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localShareRepository.GetAllShares").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shares, nil
}

func (r *localShareRepository) GetShare(ctx context.Context, shareID string) (models.Share, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectShareQuery(shareID)
	if err != nil {
		log.Err(err).Str("func", "localShareRepository.GetShare").Str("share_id", shareID).Msg("failed to create query")
		return models.Share{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	share, err := scanShare(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Share{}, ErrShareNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localShareRepository.GetShare").Str("share_id", shareID).Msg("failed to scan share row")
		return models.Share{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return share, nil
}

func (r *localShareRepository) UpsertShares(ctx context.Context, shares ...models.Share) error {
	if len(shares) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSharesQuery(shares)
	if err = execBuilt(ctx, r.DB, query, args, err); err != nil {
		log.Err(err).
			Str("func", "localShareRepository.UpsertShares").
			Int("shares", len(shares)).
			Msg("failed to upsert shares")
		return err
	}

	return nil
}

func (r *localShareRepository) DeleteShares(ctx context.Context, shareIDs ...string) error {
	if len(shareIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range shareOwnedTables {
			query, args, buildErr := buildDeleteByShareQuery(table, shareIDs)
			if err := execBuilt(ctx, tx, query, args, buildErr); err != nil {
				return fmt.Errorf("delete from %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localShareRepository.DeleteShares").
			Strs("share_ids", shareIDs).
			Msg("failed to delete shares")
		return err
	}

	return nil
}
