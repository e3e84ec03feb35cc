// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/require"
)

// memItemRepo is an in-memory store.LocalItemRepository.
type memItemRepo struct {
	mu    sync.Mutex
	items map[models.ItemIdentifier]models.CachedItem
}

func newMemItemRepo(items ...models.CachedItem) *memItemRepo {
	r := &memItemRepo{items: make(map[models.ItemIdentifier]models.CachedItem)}
	for _, it := range items {
		r.items[it.Identifier()] = it
	}
	return r
}

func (r *memItemRepo) GetItems(_ context.Context, filter models.ItemFilter) ([]models.CachedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CachedItem, 0, len(r.items))
	for _, it := range r.items {
		if filter.ShareID != "" && it.ShareID != filter.ShareID {
			continue
		}
		if filter.State != 0 && it.Item.State != filter.State {
			continue
		}
		if filter.PinnedOnly && !it.Item.Pinned {
			continue
		}
		if filter.LoginOnly && !it.IsLoginItem {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShareID != out[j].ShareID {
			return out[i].ShareID < out[j].ShareID
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

func (r *memItemRepo) GetItem(_ context.Context, shareID, itemID string) (models.CachedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[models.ItemIdentifier{ShareID: shareID, ItemID: itemID}]
	if !ok {
		return models.CachedItem{}, store.ErrItemNotFound
	}
	return it, nil
}

func (r *memItemRepo) UpsertItems(_ context.Context, items ...models.CachedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		r.items[it.Identifier()] = it
	}
	return nil
}

func (r *memItemRepo) ReplaceShareItems(_ context.Context, shareID string, items []models.CachedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := range r.items {
		if id.ShareID == shareID {
			delete(r.items, id)
		}
	}
	for _, it := range items {
		r.items[it.Identifier()] = it
	}
	return nil
}

func (r *memItemRepo) DeleteItems(_ context.Context, shareID string, itemIDs ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range itemIDs {
		delete(r.items, models.ItemIdentifier{ShareID: shareID, ItemID: id})
	}
	return nil
}

func (r *memItemRepo) UpdateLastUseTimes(_ context.Context, shareID string, items ...models.LastUseItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, lu := range items {
		id := models.ItemIdentifier{ShareID: shareID, ItemID: lu.ItemID}
		if it, ok := r.items[id]; ok {
			it.Item.LastUseTime = lu.LastUseTime
			r.items[id] = it
		}
	}
	return nil
}

func (r *memItemRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// memShareRepo is an in-memory store.LocalShareRepository.
type memShareRepo struct {
	mu      sync.Mutex
	shares  map[string]models.Share
	deleted []string
}

func newMemShareRepo(shares ...models.Share) *memShareRepo {
	r := &memShareRepo{shares: make(map[string]models.Share)}
	for _, s := range shares {
		r.shares[s.ShareID] = s
	}
	return r
}

func (r *memShareRepo) GetAllShares(context.Context) ([]models.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Share, 0, len(r.shares))
	for _, s := range r.shares {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShareID < out[j].ShareID })
	return out, nil
}

func (r *memShareRepo) GetShare(_ context.Context, shareID string) (models.Share, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shares[shareID]
	if !ok {
		return models.Share{}, store.ErrShareNotFound
	}
	return s, nil
}

func (r *memShareRepo) UpsertShares(_ context.Context, shares ...models.Share) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range shares {
		r.shares[s.ShareID] = s
	}
	return nil
}

func (r *memShareRepo) DeleteShares(_ context.Context, shareIDs ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range shareIDs {
		delete(r.shares, id)
		r.deleted = append(r.deleted, id)
	}
	return nil
}

func (r *memShareRepo) ids() []string {
	shares, _ := r.GetAllShares(context.Background())
	ids := make([]string, len(shares))
	for i, s := range shares {
		ids[i] = s.ShareID
	}
	return ids
}

// memEventRepo is an in-memory store.LocalEventRepository.
type memEventRepo struct {
	mu  sync.Mutex
	ids map[string]string
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{ids: make(map[string]string)}
}

func (r *memEventRepo) GetLastEventID(_ context.Context, shareID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.ids[shareID]
	if !ok {
		return "", store.ErrEventIDNotFound
	}
	return id, nil
}

func (r *memEventRepo) SetLastEventID(_ context.Context, shareID, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids[shareID] = eventID
	return nil
}

func (r *memEventRepo) get(shareID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[shareID]
}

// stubKeyCache serves fixed share and item keys.
type stubKeyCache struct {
	shareKeys map[shareKeyID]models.DecryptedShareKey
	itemKeys  map[models.ItemIdentifier]models.DecryptedItemKey
}

func newStubKeyCache(keys ...models.DecryptedShareKey) *stubKeyCache {
	c := &stubKeyCache{
		shareKeys: make(map[shareKeyID]models.DecryptedShareKey),
		itemKeys:  make(map[models.ItemIdentifier]models.DecryptedItemKey),
	}
	for _, k := range keys {
		c.shareKeys[shareKeyID{k.ShareID, k.KeyRotation}] = k
	}
	return c
}

func (c *stubKeyCache) GetShareKey(_ context.Context, shareID string, keyRotation int64) (models.DecryptedShareKey, error) {
	k, ok := c.shareKeys[shareKeyID{shareID, keyRotation}]
	if !ok {
		return models.DecryptedShareKey{}, fmt.Errorf("%w: share %s rotation %d", ErrKeysNotFound, shareID, keyRotation)
	}
	return k, nil
}

func (c *stubKeyCache) GetLatestShareKey(_ context.Context, shareID string) (models.DecryptedShareKey, error) {
	var (
		latest models.DecryptedShareKey
		found  bool
	)
	for id, k := range c.shareKeys {
		if id.shareID == shareID && (!found || k.KeyRotation > latest.KeyRotation) {
			latest, found = k, true
		}
	}
	if !found {
		return models.DecryptedShareKey{}, ErrKeysNotFound
	}
	return latest, nil
}

func (c *stubKeyCache) GetLatestItemKey(_ context.Context, shareID, itemID string) (models.DecryptedItemKey, error) {
	k, ok := c.itemKeys[models.ItemIdentifier{ShareID: shareID, ItemID: itemID}]
	if !ok {
		return models.DecryptedItemKey{}, ErrItemNotFound
	}
	return k, nil
}

func newTestVaultKey(t *testing.T) crypto.VaultKey {
	t.Helper()
	k, err := crypto.GenerateVaultKey()
	require.NoError(t, err)
	return k
}

func newTestDeviceKey(t *testing.T, secret string) crypto.DeviceKey {
	t.Helper()
	k, err := crypto.DeriveDeviceKey([]byte(secret), nil)
	require.NoError(t, err)
	return k
}

func loginContent(name string) models.ItemContent {
	return models.ItemContent{
		Name:     name,
		Note:     "note of " + name,
		ItemUUID: "uuid-" + name,
		Data: models.ItemData{
			Type:  models.ItemTypeLogin,
			Login: &models.LoginData{Username: "alice", Password: "s3cret", URLs: []string{"https://example.com"}},
		},
		ExtraFields: []models.ExtraField{{Name: "pin", Type: "hidden", Value: "1234"}},
	}
}

// sealRevision builds a remote revision of content the way the server holds
// it: content under a fresh item key, the item key under shareKey.
func sealRevision(t *testing.T, shareKey models.DecryptedShareKey, itemID string, content models.ItemContent) models.ItemRevision {
	t.Helper()

	plaintext, err := json.Marshal(content)
	require.NoError(t, err)

	itemKey := newTestVaultKey(t)
	encContent, err := sealVaultString(itemKey, plaintext, crypto.TagItemContent)
	require.NoError(t, err)
	encKey, err := sealVaultString(shareKey.Key, itemKey[:], crypto.TagItemKey)
	require.NoError(t, err)

	return models.ItemRevision{
		ItemID:               itemID,
		Revision:             1,
		ContentFormatVersion: 1,
		KeyRotation:          shareKey.KeyRotation,
		Content:              encContent,
		ItemKey:              &encKey,
		State:                models.ItemStateActive,
		CreateTime:           1700000000,
		ModifyTime:           1700000000,
	}
}

// sealLegacyRevision seals content directly under the share key.
func sealLegacyRevision(t *testing.T, shareKey models.DecryptedShareKey, itemID string, content models.ItemContent) models.ItemRevision {
	t.Helper()

	plaintext, err := json.Marshal(content)
	require.NoError(t, err)
	encContent, err := sealVaultString(shareKey.Key, plaintext, crypto.TagItemContent)
	require.NoError(t, err)

	return models.ItemRevision{
		ItemID:      itemID,
		Revision:    1,
		KeyRotation: shareKey.KeyRotation,
		Content:     encContent,
		State:       models.ItemStateActive,
	}
}

func b64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
