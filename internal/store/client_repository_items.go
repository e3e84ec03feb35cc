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

// localItemRepository is the SQLite-backed implementation of
// [LocalItemRepository]. Item content is stored as delivered by the service
// layer: sealed under the device key.
type localItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalItemRepository constructs a [LocalItemRepository] over db.
func NewLocalItemRepository(db *DB, logger *logger.Logger) LocalItemRepository {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

func scanItem(row rowScanner) (models.CachedItem, error) {
	var it models.CachedItem
	var itemKey sql.NullString
	var state int

	err := row.Scan(
		&it.ShareID,
		&it.ItemID,
		&it.Item.Revision,
		&it.Item.ContentFormatVersion,
		&it.Item.KeyRotation,
		&it.Item.Content,
		&itemKey,
		&state,
		&it.Item.Pinned,
		&it.Item.CreateTime,
		&it.Item.ModifyTime,
		&it.Item.LastUseTime,
		&it.Item.RevisionTime,
		&it.EncryptedContent,
		&it.IsLoginItem,
	)
	if err != nil {
		return models.CachedItem{}, err
	}

	it.Item.ItemID = it.ItemID
	it.Item.State = models.ItemState(state)
	if itemKey.Valid {
		it.Item.ItemKey = &itemKey.String
	}

	return it, nil
}

// GetItems returns the cached items matching filter, most recently modified
// first.
func (r *localItemRepository) GetItems(ctx context.Context, filter models.ItemFilter) ([]models.CachedItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.GetItems").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.GetItems").
			Str("share_id", filter.ShareID).
			Msg("failed to execute query for getting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CachedItem, 0, 50)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localItemRepository.GetItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localItemRepository.GetItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *localItemRepository) GetItem(ctx context.Context, shareID, itemID string) (models.CachedItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(shareID, itemID)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.GetItem").Msg("failed to create query")
		return models.CachedItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.GetItem").
			Str("share_id", shareID).
			Str("item_id", itemID).
			Msg("failed to scan item row")
		return models.CachedItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpsertItems inserts or replaces items, chunked to respect the bind
// variable limit. All chunks are written in one transaction.
func (r *localItemRepository) UpsertItems(ctx context.Context, items ...models.CachedItem) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		return upsertItems(ctx, tx, items)
	})
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.UpsertItems").
			Int("items", len(items)).
			Msg("failed to upsert items")
		return err
	}

	return nil
}

func upsertItems(ctx context.Context, ex execer, items []models.CachedItem) error {
	for _, w := range chunk(len(items), upsertChunkSize) {
		query, args, buildErr := buildUpsertItemsQuery(items[w[0]:w[1]])
		if err := execBuilt(ctx, ex, query, args, buildErr); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceShareItems removes every cached item of shareID and stores items in
// the same transaction, so readers never observe a half refreshed share.
func (r *localItemRepository) ReplaceShareItems(ctx context.Context, shareID string, items []models.CachedItem) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		query, args, buildErr := buildDeleteByShareQuery("items", []string{shareID})
		if err := execBuilt(ctx, tx, query, args, buildErr); err != nil {
			return err
		}
		return upsertItems(ctx, tx, items)
	})
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.ReplaceShareItems").
			Str("share_id", shareID).
			Int("items", len(items)).
			Msg("failed to replace share items")
		return err
	}

	return nil
}

func (r *localItemRepository) DeleteItems(ctx context.Context, shareID string, itemIDs ...string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemsQuery(shareID, itemIDs)
	if err = execBuilt(ctx, r.DB, query, args, err); err != nil {
		log.Err(err).
			Str("func", "localItemRepository.DeleteItems").
			Str("share_id", shareID).
			Strs("item_ids", itemIDs).
			Msg("failed to delete items")
		return err
	}

	return nil
}

// UpdateLastUseTimes sets last_use_time of the listed items. Unknown items
// are ignored.
func (r *localItemRepository) UpdateLastUseTimes(ctx context.Context, shareID string, items ...models.LastUseItem) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		for _, it := range items {
			if _, err := tx.ExecContext(ctx, updateLastUseTime, it.LastUseTime, shareID, it.ItemID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.UpdateLastUseTimes").
			Str("share_id", shareID).
			Int("items", len(items)).
			Msg("failed to update last use times")
		return err
	}

	return nil
}
