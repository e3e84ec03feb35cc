// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-pass-vault/internal/crypto"

// ShareKey is one rotation of a share's symmetric key as it travels over the
// wire and sits in the local cache: sealed to the user key identified by
// UserKeyID. The clear key never leaves memory.
type ShareKey struct {
	ShareID      string `json:"share_id"`
	KeyRotation  int64  `json:"key_rotation"`
	EncryptedKey string `json:"key"`
	UserKeyID    string `json:"user_key_id"`
	CreateTime   int64  `json:"create_time"`
}

// ItemKey is a per-item symmetric key sealed under the owning share key at
// KeyRotation.
type ItemKey struct {
	ShareID      string `json:"share_id"`
	ItemID       string `json:"item_id"`
	KeyRotation  int64  `json:"key_rotation"`
	EncryptedKey string `json:"key"`
}

// DecryptedShareKey is a share key opened with the user keyring. It is only
// ever held in memory by the key cache.
type DecryptedShareKey struct {
	ShareID     string
	KeyRotation int64
	Key         crypto.VaultKey
}

// DecryptedItemKey is an item key opened with its share key.
type DecryptedItemKey struct {
	ShareID     string
	ItemID      string
	KeyRotation int64
	Key         crypto.VaultKey
}
