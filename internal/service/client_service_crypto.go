// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// openVaultString decodes a base64 blob and opens it with key under tag.
func openVaultString(key crypto.VaultKey, blob, tag string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBase64DecodeFailed, err)
	}

	plaintext, err := key.Open(raw, tag)
	if err != nil {
		return nil, mapCryptoError(err)
	}
	return plaintext, nil
}

// sealVaultString seals plaintext with key under tag and base64 encodes it.
func sealVaultString(key crypto.VaultKey, plaintext []byte, tag string) (string, error) {
	sealed, err := key.Seal(plaintext, tag)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func openDeviceString(key crypto.DeviceKey, blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBase64DecodeFailed, err)
	}

	plaintext, err := key.Open(raw)
	if err != nil {
		return nil, mapCryptoError(err)
	}
	return plaintext, nil
}

func sealDeviceString(key crypto.DeviceKey, plaintext []byte) (string, error) {
	sealed, err := key.Seal(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// openItemKey unwraps a base64 item key sealed under a share key.
func openItemKey(shareKey crypto.VaultKey, blob string) (crypto.VaultKey, error) {
	raw, err := openVaultString(shareKey, blob, crypto.TagItemKey)
	if err != nil {
		return crypto.VaultKey{}, err
	}

	key, err := crypto.NewVaultKey(raw)
	if err != nil {
		return crypto.VaultKey{}, mapCryptoError(err)
	}
	return key, nil
}
