// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// itemContentFormatVersion is the ItemContent layout written by this client.
const itemContentFormatVersion = 1

// encryptedItemStore is the private implementation of [EncryptedItemStore].
type encryptedItemStore struct {
	keys       KeyCache
	local      store.LocalItemRepository
	remote     adapter.ItemSource
	deviceKeys crypto.DeviceKeyProvider
	ids        *utils.UUIDGenerator
	batchSize  int

	// mu orders pinned recomputations so subscribers never see an older list
	// after a newer one.
	mu     sync.Mutex
	pinned *pinnedCursor

	logger *logger.Logger
}

// NewEncryptedItemStore returns an EncryptedItemStore persisting to local and
// mirroring mutations to remote. batchSize bounds the number of items sent in
// one remote batch request; non-positive values mean
// config.DefaultBatchSize.
func NewEncryptedItemStore(
	keys KeyCache,
	local store.LocalItemRepository,
	remote adapter.ItemSource,
	deviceKeys crypto.DeviceKeyProvider,
	batchSize int,
	logger *logger.Logger,
) EncryptedItemStore {
	if batchSize <= 0 {
		batchSize = config.DefaultBatchSize
	}

	return &encryptedItemStore{
		keys:       keys,
		local:      local,
		remote:     remote,
		deviceKeys: deviceKeys,
		ids:        utils.NewUUIDGenerator(),
		batchSize:  batchSize,
		pinned:     newPinnedCursor(),
		logger:     logger,
	}
}

// ReEncrypt implements [EncryptedItemStore]. It opens a server revision with
// its item key, or with the share key for items that have none, and seals
// the content under the device key.
func (s *encryptedItemStore) ReEncrypt(ctx context.Context, shareID string, rev models.ItemRevision) (models.CachedItem, error) {
	plaintext, err := s.openRevision(ctx, shareID, rev)
	if err != nil {
		return models.CachedItem{}, err
	}

	return s.cache(shareID, rev, plaintext)
}

// openRevision returns the JSON ItemContent of a remote revision. Items
// without an item key have their content sealed under the share key itself.
func (s *encryptedItemStore) openRevision(ctx context.Context, shareID string, rev models.ItemRevision) ([]byte, error) {
	shareKey, err := s.keys.GetShareKey(ctx, shareID, rev.KeyRotation)
	if err != nil {
		return nil, err
	}

	contentKey := shareKey.Key
	if rev.ItemKey != nil && *rev.ItemKey != "" {
		contentKey, err = openItemKey(shareKey.Key, *rev.ItemKey)
		if err != nil {
			return nil, err
		}
	}

	return openVaultString(contentKey, rev.Content, crypto.TagItemContent)
}

// cache seals plaintext under the device key. plaintext is stored as is so
// that GetItemContent returns exactly what the server holds.
func (s *encryptedItemStore) cache(shareID string, rev models.ItemRevision, plaintext []byte) (models.CachedItem, error) {
	var content models.ItemContent
	if err := json.Unmarshal(plaintext, &content); err != nil {
		return models.CachedItem{}, fmt.Errorf("%w: %w", ErrInvalidItemContent, err)
	}

	deviceKey, err := s.deviceKeys.DeviceKey()
	if err != nil {
		return models.CachedItem{}, fmt.Errorf("get device key: %w", err)
	}

	encrypted, err := sealDeviceString(deviceKey, plaintext)
	if err != nil {
		return models.CachedItem{}, fmt.Errorf("seal item for cache: %w", err)
	}

	return models.CachedItem{
		ShareID:          shareID,
		ItemID:           rev.ItemID,
		Item:             rev,
		EncryptedContent: encrypted,
		IsLoginItem:      content.IsLogin(),
	}, nil
}

// GetItemContent implements [EncryptedItemStore]. Only the device key is
// involved; no share or item key is resolved.
func (s *encryptedItemStore) GetItemContent(item models.CachedItem) (models.ItemContent, error) {
	plaintext, err := s.openCached(item)
	if err != nil {
		return models.ItemContent{}, err
	}

	var content models.ItemContent
	if err = json.Unmarshal(plaintext, &content); err != nil {
		return models.ItemContent{}, fmt.Errorf("%w: %w", ErrInvalidItemContent, err)
	}
	return content, nil
}

func (s *encryptedItemStore) openCached(item models.CachedItem) ([]byte, error) {
	deviceKey, err := s.deviceKeys.DeviceKey()
	if err != nil {
		return nil, fmt.Errorf("get device key: %w", err)
	}
	return openDeviceString(deviceKey, item.EncryptedContent)
}

// GetItem implements [EncryptedItemStore]. It returns [ErrItemNotFound] for
// an item that is not cached.
func (s *encryptedItemStore) GetItem(ctx context.Context, shareID, itemID string) (models.CachedItem, error) {
	item, err := s.local.GetItem(ctx, shareID, itemID)
	if err != nil {
		return models.CachedItem{}, mapStoreError(err)
	}
	return item, nil
}

// GetItems implements [EncryptedItemStore].
func (s *encryptedItemStore) GetItems(ctx context.Context, filter models.ItemFilter) ([]models.CachedItem, error) {
	return s.local.GetItems(ctx, filter)
}

// CreateItem implements [EncryptedItemStore]. It seals content under a fresh
// item key, which is itself sealed under the latest share key, and stores
// the server's revision locally.
func (s *encryptedItemStore) CreateItem(ctx context.Context, shareID string, content models.ItemContent) (models.CachedItem, error) {
	log := logger.FromContext(ctx)

	if content.ItemUUID == "" {
		content.ItemUUID = s.ids.Generate()
	}

	shareKey, err := s.keys.GetLatestShareKey(ctx, shareID)
	if err != nil {
		return models.CachedItem{}, err
	}

	itemKey, err := crypto.GenerateVaultKey()
	if err != nil {
		return models.CachedItem{}, err
	}

	plaintext, err := json.Marshal(content)
	if err != nil {
		return models.CachedItem{}, fmt.Errorf("marshal item content: %w", err)
	}

	encryptedContent, err := sealVaultString(itemKey, plaintext, crypto.TagItemContent)
	if err != nil {
		return models.CachedItem{}, err
	}
	encryptedKey, err := sealVaultString(shareKey.Key, itemKey[:], crypto.TagItemKey)
	if err != nil {
		return models.CachedItem{}, err
	}

	rev, err := s.remote.CreateItem(ctx, shareID, models.CreateItemRequest{
		KeyRotation:          shareKey.KeyRotation,
		ContentFormatVersion: itemContentFormatVersion,
		Content:              encryptedContent,
		ItemKey:              encryptedKey,
	})
	if err != nil {
		log.Err(err).Str("func", "encryptedItemStore.CreateItem").Str("share_id", shareID).Msg("failed to create item on server")
		return models.CachedItem{}, mapAdapterError(err)
	}

	cached, err := s.cache(shareID, rev, plaintext)
	if err != nil {
		return models.CachedItem{}, err
	}

	if err = s.local.UpsertItems(ctx, cached); err != nil {
		return models.CachedItem{}, err
	}

	return cached, nil
}

// UpdateItem implements [EncryptedItemStore]. It replaces the content of an
// existing item, sealing it under the item's latest key.
func (s *encryptedItemStore) UpdateItem(ctx context.Context, item models.CachedItem, content models.ItemContent) (models.CachedItem, error) {
	log := logger.FromContext(ctx)

	if _, err := s.local.GetItem(ctx, item.ShareID, item.ItemID); err != nil {
		return models.CachedItem{}, mapStoreError(err)
	}

	itemKey, err := s.keys.GetLatestItemKey(ctx, item.ShareID, item.ItemID)
	if err != nil {
		return models.CachedItem{}, err
	}

	plaintext, err := json.Marshal(content)
	if err != nil {
		return models.CachedItem{}, fmt.Errorf("marshal item content: %w", err)
	}

	encryptedContent, err := sealVaultString(itemKey.Key, plaintext, crypto.TagItemContent)
	if err != nil {
		return models.CachedItem{}, err
	}

	rev, err := s.remote.UpdateItem(ctx, item.ShareID, item.ItemID, models.UpdateItemRequest{
		KeyRotation:          itemKey.KeyRotation,
		LastRevision:         item.Item.Revision,
		ContentFormatVersion: itemContentFormatVersion,
		Content:              encryptedContent,
	})
	if err != nil {
		log.Err(err).
			Str("func", "encryptedItemStore.UpdateItem").
			Str("share_id", item.ShareID).
			Str("item_id", item.ItemID).
			Msg("failed to update item on server")
		return models.CachedItem{}, mapAdapterError(err)
	}

	cached, err := s.cache(item.ShareID, rev, plaintext)
	if err != nil {
		return models.CachedItem{}, err
	}

	if err = s.local.UpsertItems(ctx, cached); err != nil {
		return models.CachedItem{}, err
	}

	return cached, s.ReloadPinned(ctx)
}

type stateChangeFunc func(ctx context.Context, shareID string, req models.ItemBatchRequest) ([]models.ItemStateChange, error)

// TrashItems implements [EncryptedItemStore]. Items are sent per share in
// batches; the local copy takes the state the server reports.
func (s *encryptedItemStore) TrashItems(ctx context.Context, items []models.CachedItem) error {
	return s.changeState(ctx, items, s.remote.TrashItems)
}

// UntrashItems implements [EncryptedItemStore]. See TrashItems.
func (s *encryptedItemStore) UntrashItems(ctx context.Context, items []models.CachedItem) error {
	return s.changeState(ctx, items, s.remote.UntrashItems)
}

func (s *encryptedItemStore) changeState(ctx context.Context, items []models.CachedItem, change stateChangeFunc) error {
	err := s.forEachBatch(items, func(shareID string, batch []models.CachedItem) error {
		changes, err := change(ctx, shareID, batchRequest(batch))
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "encryptedItemStore.changeState").
				Str("share_id", shareID).
				Int("items", len(batch)).
				Msg("failed to change item state on server")
			return mapAdapterError(err)
		}
		return s.local.UpsertItems(ctx, applyStateChanges(batch, changes)...)
	})

	return s.reloadPinnedAfter(ctx, err)
}

// DeleteItems implements [EncryptedItemStore]. It permanently removes items
// remotely and locally.
func (s *encryptedItemStore) DeleteItems(ctx context.Context, items []models.CachedItem) error {
	err := s.forEachBatch(items, func(shareID string, batch []models.CachedItem) error {
		if err := s.remote.DeleteItems(ctx, shareID, batchRequest(batch)); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "encryptedItemStore.DeleteItems").
				Str("share_id", shareID).
				Int("items", len(batch)).
				Msg("failed to delete items on server")
			return mapAdapterError(err)
		}
		return s.local.DeleteItems(ctx, shareID, itemIDs(batch)...)
	})

	return s.reloadPinnedAfter(ctx, err)
}

// MoveItems implements [EncryptedItemStore]. It moves items into dstShareID.
// Every item gets a new item key sealed under the destination's latest share
// key and its content sealed again under that item key. Items already in
// dstShareID are left alone.
func (s *encryptedItemStore) MoveItems(ctx context.Context, items []models.CachedItem, dstShareID string) ([]models.CachedItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to move", ErrUnexpected)
	}

	dstKey, err := s.keys.GetLatestShareKey(ctx, dstShareID)
	if err != nil {
		return nil, err
	}

	moved := make([]models.CachedItem, 0, len(items))
	err = s.forEachBatch(items, func(shareID string, batch []models.CachedItem) error {
		if shareID == dstShareID {
			return nil
		}

		out, moveErr := s.moveBatch(ctx, shareID, dstShareID, batch, dstKey)
		if moveErr != nil {
			return moveErr
		}
		moved = append(moved, out...)
		return nil
	})

	return moved, s.reloadPinnedAfter(ctx, err)
}

func (s *encryptedItemStore) moveBatch(ctx context.Context, shareID, dstShareID string, batch []models.CachedItem, dstKey models.DecryptedShareKey) ([]models.CachedItem, error) {
	plaintexts := make([][]byte, len(batch))
	payloads := make([]models.MoveItemPayload, len(batch))

	for i, item := range batch {
		plaintext, err := s.openCached(item)
		if err != nil {
			return nil, err
		}

		itemKey, err := crypto.GenerateVaultKey()
		if err != nil {
			return nil, err
		}
		content, err := sealVaultString(itemKey, plaintext, crypto.TagItemContent)
		if err != nil {
			return nil, err
		}
		encryptedKey, err := sealVaultString(dstKey.Key, itemKey[:], crypto.TagItemKey)
		if err != nil {
			return nil, err
		}

		plaintexts[i] = plaintext
		payloads[i] = models.MoveItemPayload{
			ItemID:               item.ItemID,
			ContentFormatVersion: item.Item.ContentFormatVersion,
			Content:              content,
			ItemKey:              encryptedKey,
		}
	}

	revs, err := s.remote.MoveItems(ctx, shareID, models.MoveItemsRequest{
		DestinationShareID: dstShareID,
		KeyRotation:        dstKey.KeyRotation,
		Items:              payloads,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "encryptedItemStore.moveBatch").
			Str("share_id", shareID).
			Str("destination_share_id", dstShareID).
			Int("items", len(batch)).
			Msg("failed to move items on server")
		return nil, mapAdapterError(err)
	}
	if len(revs) != len(batch) {
		return nil, fmt.Errorf("%w: moved %d items, server returned %d", ErrUnexpected, len(batch), len(revs))
	}

	moved := make([]models.CachedItem, len(revs))
	for i, rev := range revs {
		moved[i], err = s.cache(dstShareID, rev, plaintexts[i])
		if err != nil {
			return nil, err
		}
	}

	if err = s.local.DeleteItems(ctx, shareID, itemIDs(batch)...); err != nil {
		return nil, err
	}
	if err = s.local.UpsertItems(ctx, moved...); err != nil {
		return nil, err
	}

	return moved, nil
}

// TrashItemsByID implements [EncryptedItemStore]. Identifiers that are not
// cached are skipped.
func (s *encryptedItemStore) TrashItemsByID(ctx context.Context, ids []models.ItemIdentifier) error {
	items, err := s.loadByID(ctx, ids)
	if err != nil {
		return err
	}
	return s.TrashItems(ctx, items)
}

// UntrashItemsByID implements [EncryptedItemStore]. Identifiers that are not
// cached are skipped.
func (s *encryptedItemStore) UntrashItemsByID(ctx context.Context, ids []models.ItemIdentifier) error {
	items, err := s.loadByID(ctx, ids)
	if err != nil {
		return err
	}
	return s.UntrashItems(ctx, items)
}

// DeleteItemsByID implements [EncryptedItemStore]. Identifiers that are not
// cached are skipped.
func (s *encryptedItemStore) DeleteItemsByID(ctx context.Context, ids []models.ItemIdentifier) error {
	items, err := s.loadByID(ctx, ids)
	if err != nil {
		return err
	}
	return s.DeleteItems(ctx, items)
}

// MoveItemsByID implements [EncryptedItemStore]. It fails with
// ErrItemNotFound when any of ids is not cached.
func (s *encryptedItemStore) MoveItemsByID(ctx context.Context, ids []models.ItemIdentifier, dstShareID string) ([]models.CachedItem, error) {
	items, err := s.loadByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	if missing := countMissing(ids, items); missing > 0 {
		return nil, fmt.Errorf("%w: %d of %d items to move are not cached", ErrItemNotFound, missing, len(ids))
	}

	return s.MoveItems(ctx, items, dstShareID)
}

// loadByID returns the cached items among ids. Unknown ids are skipped.
func (s *encryptedItemStore) loadByID(ctx context.Context, ids []models.ItemIdentifier) ([]models.CachedItem, error) {
	all, err := s.local.GetItems(ctx, models.ItemFilter{})
	if err != nil {
		return nil, err
	}

	wanted := make(map[models.ItemIdentifier]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	items := make([]models.CachedItem, 0, len(ids))
	for _, item := range all {
		if _, ok := wanted[item.Identifier()]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// PinItem implements [EncryptedItemStore].
func (s *encryptedItemStore) PinItem(ctx context.Context, item models.CachedItem) (models.CachedItem, error) {
	return s.setPinned(ctx, item, s.remote.PinItem)
}

// UnpinItem implements [EncryptedItemStore].
func (s *encryptedItemStore) UnpinItem(ctx context.Context, item models.CachedItem) (models.CachedItem, error) {
	return s.setPinned(ctx, item, s.remote.UnpinItem)
}

func (s *encryptedItemStore) setPinned(
	ctx context.Context,
	item models.CachedItem,
	pin func(ctx context.Context, shareID, itemID string) (models.ItemStateChange, error),
) (models.CachedItem, error) {
	change, err := pin(ctx, item.ShareID, item.ItemID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "encryptedItemStore.setPinned").
			Str("share_id", item.ShareID).
			Str("item_id", item.ItemID).
			Msg("failed to change pin state on server")
		return models.CachedItem{}, mapAdapterError(err)
	}

	updated := applyStateChange(item, change)
	if err = s.local.UpsertItems(ctx, updated); err != nil {
		return models.CachedItem{}, err
	}

	return updated, s.ReloadPinned(ctx)
}

// SubscribePinned implements [EncryptedItemStore]. The channel receives the
// current pinned items first, then every recomputation. The returned func
// unsubscribes and closes the channel.
func (s *encryptedItemStore) SubscribePinned() (<-chan []models.CachedItem, func()) {
	return s.pinned.subscribe()
}

// ReloadPinned implements [EncryptedItemStore]. It publishes the active
// pinned items currently persisted.
func (s *encryptedItemStore) ReloadPinned(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pinned, err := s.local.GetItems(ctx, models.ItemFilter{State: models.ItemStateActive, PinnedOnly: true})
	if err != nil {
		return fmt.Errorf("load pinned items: %w", err)
	}

	s.pinned.publish(pinned)
	return nil
}

// reloadPinnedAfter reloads the pinned items even when a batch operation
// failed part way, since earlier batches may already be applied.
func (s *encryptedItemStore) reloadPinnedAfter(ctx context.Context, opErr error) error {
	if err := s.ReloadPinned(ctx); err != nil && opErr == nil {
		return err
	}
	return opErr
}

// UpsertItems implements [EncryptedItemStore]. Revisions from an event
// batch are re-encrypted and written over the local copies.
func (s *encryptedItemStore) UpsertItems(ctx context.Context, shareID string, revs []models.ItemRevision) error {
	if len(revs) == 0 {
		return nil
	}

	cached, err := s.reEncryptAll(ctx, shareID, revs)
	if err != nil {
		return err
	}

	if err = s.local.UpsertItems(ctx, cached...); err != nil {
		return err
	}
	return s.ReloadPinned(ctx)
}

// RefreshItems implements [EncryptedItemStore]. It pulls every item of the
// share and atomically replaces the local copy with it.
func (s *encryptedItemStore) RefreshItems(ctx context.Context, shareID string) error {
	log := logger.FromContext(ctx)

	revs, err := s.remote.ListItems(ctx, shareID)
	if err != nil {
		log.Err(err).Str("func", "encryptedItemStore.RefreshItems").Str("share_id", shareID).Msg("failed to list items on server")
		return mapAdapterError(err)
	}

	cached, err := s.reEncryptAll(ctx, shareID, revs)
	if err != nil {
		return err
	}

	if err = s.local.ReplaceShareItems(ctx, shareID, cached); err != nil {
		return err
	}

	log.Debug().Str("share_id", shareID).Int("items", len(cached)).Msg("share items refreshed")
	return s.ReloadPinned(ctx)
}

func (s *encryptedItemStore) reEncryptAll(ctx context.Context, shareID string, revs []models.ItemRevision) ([]models.CachedItem, error) {
	cached := make([]models.CachedItem, 0, len(revs))
	for _, rev := range revs {
		item, err := s.ReEncrypt(ctx, shareID, rev)
		if err != nil {
			return nil, fmt.Errorf("re-encrypt item %s: %w", rev.ItemID, err)
		}
		cached = append(cached, item)
	}
	return cached, nil
}

// DeleteLocalItems implements [EncryptedItemStore]. The server is not
// contacted.
func (s *encryptedItemStore) DeleteLocalItems(ctx context.Context, shareID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	if err := s.local.DeleteItems(ctx, shareID, itemIDs...); err != nil {
		return err
	}
	return s.ReloadPinned(ctx)
}

// UpdateLastUseTimes implements [EncryptedItemStore].
func (s *encryptedItemStore) UpdateLastUseTimes(ctx context.Context, shareID string, items []models.LastUseItem) error {
	return s.local.UpdateLastUseTimes(ctx, shareID, items...)
}

// forEachBatch groups items by share and calls fn for every batch of at most
// s.batchSize items, stopping at the first error.
func (s *encryptedItemStore) forEachBatch(items []models.CachedItem, fn func(shareID string, batch []models.CachedItem) error) error {
	for _, group := range groupByShare(items) {
		for _, batch := range batches(group.items, s.batchSize) {
			if err := fn(group.shareID, batch); err != nil {
				return err
			}
		}
	}
	return nil
}

type itemGroup struct {
	shareID string
	items   []models.CachedItem
}

// groupByShare keeps the order in which shares first appear in items.
func groupByShare(items []models.CachedItem) []itemGroup {
	index := make(map[string]int)
	groups := make([]itemGroup, 0)

	for _, item := range items {
		i, ok := index[item.ShareID]
		if !ok {
			i = len(groups)
			index[item.ShareID] = i
			groups = append(groups, itemGroup{shareID: item.ShareID})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

func batches[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = max(len(items), 1)
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

func batchRequest(items []models.CachedItem) models.ItemBatchRequest {
	refs := make([]models.ItemRevisionRef, len(items))
	for i, item := range items {
		refs[i] = models.ItemRevisionRef{ItemID: item.ItemID, Revision: item.Item.Revision}
	}
	return models.ItemBatchRequest{Items: refs}
}

func itemIDs(items []models.CachedItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}
	return ids
}

// applyStateChanges returns the items of batch the server reported a change
// for, with the new metadata applied.
func applyStateChanges(batch []models.CachedItem, changes []models.ItemStateChange) []models.CachedItem {
	byID := make(map[string]models.ItemStateChange, len(changes))
	for _, c := range changes {
		byID[c.ItemID] = c
	}

	updated := make([]models.CachedItem, 0, len(changes))
	for _, item := range batch {
		if c, ok := byID[item.ItemID]; ok {
			updated = append(updated, applyStateChange(item, c))
		}
	}
	return updated
}

func applyStateChange(item models.CachedItem, change models.ItemStateChange) models.CachedItem {
	item.Item.Revision = change.Revision
	item.Item.State = change.State
	item.Item.Pinned = change.Pinned
	item.Item.ModifyTime = change.ModifyTime
	return item
}

func countMissing(ids []models.ItemIdentifier, found []models.CachedItem) int {
	have := make(map[models.ItemIdentifier]struct{}, len(found))
	for _, item := range found {
		have[item.Identifier()] = struct{}{}
	}

	missing := 0
	seen := make(map[models.ItemIdentifier]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := have[id]; !ok {
			missing++
		}
	}
	return missing
}
