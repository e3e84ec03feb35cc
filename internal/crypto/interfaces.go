// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side key types and primitives.
//
// Two symmetric key types exist and are deliberately distinct Go types:
//
//	VaultKey   share keys and item keys, AES-256-GCM, shared between users
//	DeviceKey  local cache at rest, XChaCha20-Poly1305, never leaves the device
//
// Share keys travel sealed to a user key (NaCl anonymous box); the
// [UserKeyring] holds the user key pairs and opens them.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/user_key_provider_mock.go -package=mock

// UserKeyProvider opens share keys sealed to one of the user's keys.
type UserKeyProvider interface {
	// OpenShareKey opens sealed (raw bytes, not base64) with the user key
	// identified by userKeyID. Returns [ErrInactiveUserKey] when the key
	// exists but is no longer active, [ErrUnknownUserKey] when it is not in
	// the keyring, and [ErrDecryptionFailed] when the box does not open.
	OpenShareKey(userKeyID string, sealed []byte) (VaultKey, error)
}

// DeviceKeyProvider supplies the key protecting the local cache at rest.
// It is asked on every use so the key can be rotated independently.
type DeviceKeyProvider interface {
	DeviceKey() (DeviceKey, error)
}

// StaticDeviceKey is a DeviceKeyProvider that always returns the same key.
type StaticDeviceKey DeviceKey

func (k StaticDeviceKey) DeviceKey() (DeviceKey, error) {
	return DeviceKey(k), nil
}

// Associated-data tags binding a ciphertext to its purpose.
const (
	TagItemKey     = "itemkey"
	TagItemContent = "itemcontent"
)
