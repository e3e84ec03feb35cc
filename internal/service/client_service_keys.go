// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

type shareKeyID struct {
	shareID  string
	rotation int64
}

// keyCache is the private implementation of [KeyCache]. It never logs:
// everything passing through it is key material.
type keyCache struct {
	shareKeys ShareKeyRepository
	remote    adapter.KeySource
	userKeys  crypto.UserKeyProvider

	// mu is held for a whole resolve so a key is decrypted at most once.
	mu    sync.Mutex
	cache map[shareKeyID]models.DecryptedShareKey
}

// NewKeyCache constructs a [KeyCache] resolving sealed share keys through
// shareKeys and opening them with userKeys. Decrypted keys are kept for the
// lifetime of the cache and are never invalidated by a rotation.
func NewKeyCache(shareKeys ShareKeyRepository, remote adapter.KeySource, userKeys crypto.UserKeyProvider) KeyCache {
	return &keyCache{
		shareKeys: shareKeys,
		remote:    remote,
		userKeys:  userKeys,
		cache:     make(map[shareKeyID]models.DecryptedShareKey),
	}
}

// GetShareKey implements [KeyCache]. A cached (shareID, keyRotation) pair is
// returned without I/O. When the local keys lack the rotation they are
// refreshed from the server once before [ErrKeysNotFound] is returned.
func (c *keyCache) GetShareKey(ctx context.Context, shareID string, keyRotation int64) (models.DecryptedShareKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.shareKey(ctx, shareID, keyRotation)
}

// GetLatestShareKey implements [KeyCache]. It returns the key with the
// highest rotation known for the share.
func (c *keyCache) GetLatestShareKey(ctx context.Context, shareID string) (models.DecryptedShareKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.shareKeys.GetShareKeys(ctx, shareID)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}
	if len(keys) == 0 {
		return models.DecryptedShareKey{}, fmt.Errorf("%w: share %s", ErrKeysNotFound, shareID)
	}

	latest := keys[0]
	for _, k := range keys[1:] {
		if k.KeyRotation > latest.KeyRotation {
			latest = k
		}
	}

	if cached, ok := c.cache[shareKeyID{shareID, latest.KeyRotation}]; ok {
		return cached, nil
	}
	return c.open(shareID, latest)
}

// GetLatestItemKey implements [KeyCache]. The item key is fetched from the
// server and opened with the share key of its rotation. Item keys are not
// cached.
func (c *keyCache) GetLatestItemKey(ctx context.Context, shareID, itemID string) (models.DecryptedItemKey, error) {
	encrypted, err := c.remote.GetLatestItemKey(ctx, shareID, itemID)
	if err != nil {
		return models.DecryptedItemKey{}, mapAdapterError(err)
	}

	shareKey, err := c.GetShareKey(ctx, shareID, encrypted.KeyRotation)
	if err != nil {
		return models.DecryptedItemKey{}, err
	}

	key, err := openItemKey(shareKey.Key, encrypted.EncryptedKey)
	if err != nil {
		return models.DecryptedItemKey{}, err
	}

	return models.DecryptedItemKey{
		ShareID:     shareID,
		ItemID:      itemID,
		KeyRotation: encrypted.KeyRotation,
		Key:         key,
	}, nil
}

// shareKey resolves one rotation. c.mu must be held.
func (c *keyCache) shareKey(ctx context.Context, shareID string, keyRotation int64) (models.DecryptedShareKey, error) {
	if cached, ok := c.cache[shareKeyID{shareID, keyRotation}]; ok {
		return cached, nil
	}

	keys, err := c.shareKeys.GetShareKeys(ctx, shareID)
	if err != nil {
		return models.DecryptedShareKey{}, err
	}

	encrypted, ok := findRotation(keys, keyRotation)
	if !ok && len(keys) > 0 {
		// the local copy predates a rotation
		keys, err = c.shareKeys.RefreshShareKeys(ctx, shareID)
		if err != nil {
			return models.DecryptedShareKey{}, err
		}
		encrypted, ok = findRotation(keys, keyRotation)
	}
	if !ok {
		return models.DecryptedShareKey{}, fmt.Errorf("%w: share %s rotation %d", ErrKeysNotFound, shareID, keyRotation)
	}

	return c.open(shareID, encrypted)
}

// open decrypts an encrypted share key and caches it. c.mu must be held.
func (c *keyCache) open(shareID string, encrypted models.ShareKey) (models.DecryptedShareKey, error) {
	sealed, err := base64.StdEncoding.DecodeString(encrypted.EncryptedKey)
	if err != nil {
		return models.DecryptedShareKey{}, fmt.Errorf("%w: %w", ErrBase64DecodeFailed, err)
	}

	key, err := c.userKeys.OpenShareKey(encrypted.UserKeyID, sealed)
	if err != nil {
		return models.DecryptedShareKey{}, mapCryptoError(err)
	}

	decrypted := models.DecryptedShareKey{
		ShareID:     shareID,
		KeyRotation: encrypted.KeyRotation,
		Key:         key,
	}
	c.cache[shareKeyID{shareID, encrypted.KeyRotation}] = decrypted

	return decrypted, nil
}

func findRotation(keys []models.ShareKey, keyRotation int64) (models.ShareKey, bool) {
	for _, k := range keys {
		if k.KeyRotation == keyRotation {
			return k, true
		}
	}
	return models.ShareKey{}, false
}
