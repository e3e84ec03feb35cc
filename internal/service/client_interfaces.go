// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// KeyCache resolves decrypted share and item keys. Decrypted share keys are
// memoized per (share, rotation) for the lifetime of the cache; a new
// rotation adds an entry and never evicts the older ones.
type KeyCache interface {
	// GetShareKey returns the share key at the given rotation. A cached key
	// is returned without any I/O. Returns ErrKeysNotFound when the share has
	// no encrypted key at that rotation.
	GetShareKey(ctx context.Context, shareID string, keyRotation int64) (models.DecryptedShareKey, error)

	// GetLatestShareKey returns the share key with the highest rotation.
	GetLatestShareKey(ctx context.Context, shareID string) (models.DecryptedShareKey, error)

	// GetLatestItemKey fetches the newest item key from the server and opens
	// it with the matching share key.
	GetLatestItemKey(ctx context.Context, shareID, itemID string) (models.DecryptedItemKey, error)
}

// ShareKeyRepository serves encrypted share keys, local first.
type ShareKeyRepository interface {
	// GetShareKeys returns the locally cached keys of a share, fetching and
	// storing them from the server when none are cached.
	GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error)

	// RefreshShareKeys replaces the local keys of a share with the server's.
	RefreshShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error)
}

// EncryptedItemStore owns the local item cache. Every entry is decrypted
// with vault keys and sealed again under the device key before it is
// persisted.
type EncryptedItemStore interface {
	// ReEncrypt converts a remote revision into a cache entry.
	ReEncrypt(ctx context.Context, shareID string, rev models.ItemRevision) (models.CachedItem, error)

	// GetItemContent opens the device-key ciphertext of a cache entry.
	GetItemContent(item models.CachedItem) (models.ItemContent, error)

	GetItem(ctx context.Context, shareID, itemID string) (models.CachedItem, error)
	GetItems(ctx context.Context, filter models.ItemFilter) ([]models.CachedItem, error)

	CreateItem(ctx context.Context, shareID string, content models.ItemContent) (models.CachedItem, error)
	UpdateItem(ctx context.Context, item models.CachedItem, content models.ItemContent) (models.CachedItem, error)

	TrashItems(ctx context.Context, items []models.CachedItem) error
	UntrashItems(ctx context.Context, items []models.CachedItem) error
	DeleteItems(ctx context.Context, items []models.CachedItem) error
	MoveItems(ctx context.Context, items []models.CachedItem, dstShareID string) ([]models.CachedItem, error)

	TrashItemsByID(ctx context.Context, ids []models.ItemIdentifier) error
	UntrashItemsByID(ctx context.Context, ids []models.ItemIdentifier) error
	DeleteItemsByID(ctx context.Context, ids []models.ItemIdentifier) error
	MoveItemsByID(ctx context.Context, ids []models.ItemIdentifier, dstShareID string) ([]models.CachedItem, error)

	PinItem(ctx context.Context, item models.CachedItem) (models.CachedItem, error)
	UnpinItem(ctx context.Context, item models.CachedItem) (models.CachedItem, error)

	// SubscribePinned returns a channel receiving the current pinned items
	// and every later change of them. The returned func unsubscribes and
	// closes the channel.
	SubscribePinned() (<-chan []models.CachedItem, func())

	// ReloadPinned recomputes the pinned items from local persistence.
	ReloadPinned(ctx context.Context) error

	// UpsertItems re-encrypts and stores revisions received from the server.
	UpsertItems(ctx context.Context, shareID string, revs []models.ItemRevision) error

	// RefreshItems replaces the local items of a share with the server's.
	RefreshItems(ctx context.Context, shareID string) error

	DeleteLocalItems(ctx context.Context, shareID string, itemIDs []string) error
	UpdateLastUseTimes(ctx context.Context, shareID string, items []models.LastUseItem) error
}

// SyncEngine reconciles the local cache with the server.
type SyncEngine interface {
	// Sync runs one synchronization pass and reports whether anything
	// changed. A cancelled ctx ends the pass early without an error.
	Sync(ctx context.Context) (bool, error)
}

// ClientSyncJob runs SyncEngine.Sync periodically in the background.
type ClientSyncJob interface {
	// Start launches the background loop. Calling Start again restarts it.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
