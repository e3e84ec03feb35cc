// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalShareRepository persists the cached projection of remote shares.
type LocalShareRepository interface {
	GetAllShares(ctx context.Context) ([]models.Share, error)
	GetShare(ctx context.Context, shareID string) (models.Share, error)
	// UpsertShares inserts new shares and updates changed fields of existing
	// ones in place.
	UpsertShares(ctx context.Context, shares ...models.Share) error
	// DeleteShares removes the shares together with their items, keys and
	// event ids in one transaction.
	DeleteShares(ctx context.Context, shareIDs ...string) error
}

// LocalItemRepository persists device-key encrypted item cache entries.
type LocalItemRepository interface {
	GetItems(ctx context.Context, filter models.ItemFilter) ([]models.CachedItem, error)
	GetItem(ctx context.Context, shareID, itemID string) (models.CachedItem, error)
	UpsertItems(ctx context.Context, items ...models.CachedItem) error
	// ReplaceShareItems atomically swaps the whole item set of a share.
	ReplaceShareItems(ctx context.Context, shareID string, items []models.CachedItem) error
	DeleteItems(ctx context.Context, shareID string, itemIDs ...string) error
	UpdateLastUseTimes(ctx context.Context, shareID string, items ...models.LastUseItem) error
}

// LocalShareKeyRepository persists encrypted share keys. Keys stay sealed to
// the user key at rest.
type LocalShareKeyRepository interface {
	GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error)
	ReplaceShareKeys(ctx context.Context, shareID string, keys []models.ShareKey) error
}

// LocalEventRepository stores the last acknowledged event id per share.
type LocalEventRepository interface {
	GetLastEventID(ctx context.Context, shareID string) (string, error)
	SetLastEventID(ctx context.Context, shareID, eventID string) error
}
