// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

func TestSealOpenVaultString_RoundTrip(t *testing.T) {
	key := newTestVaultKey(t)
	plain := []byte(`{"name":"bank"}`)

	blob, err := sealVaultString(key, plain, crypto.TagItemContent)
	if err != nil {
		t.Fatalf("sealVaultString error: %v", err)
	}

	got, err := openVaultString(key, blob, crypto.TagItemContent)
	if err != nil {
		t.Fatalf("openVaultString error: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("plaintext mismatch: got %q, want %q", got, plain)
	}
}

func TestOpenVaultString_InvalidBase64(t *testing.T) {
	_, err := openVaultString(newTestVaultKey(t), "%%%not-base64", crypto.TagItemContent)
	if !errors.Is(err, ErrBase64DecodeFailed) {
		t.Fatalf("expected ErrBase64DecodeFailed, got %v", err)
	}
}

func TestOpenVaultString_WrongTag(t *testing.T) {
	key := newTestVaultKey(t)

	blob, err := sealVaultString(key, []byte("secret"), crypto.TagItemKey)
	if err != nil {
		t.Fatalf("sealVaultString error: %v", err)
	}

	_, err = openVaultString(key, blob, crypto.TagItemContent)
	if !errors.Is(err, ErrAuthenticatedDecryptionFailed) {
		t.Fatalf("expected ErrAuthenticatedDecryptionFailed, got %v", err)
	}
}

func TestOpenVaultString_TooShort(t *testing.T) {
	_, err := openVaultString(newTestVaultKey(t), b64([]byte{1, 2, 3}), crypto.TagItemContent)
	if !errors.Is(err, ErrAuthenticatedDecryptionFailed) {
		t.Fatalf("expected ErrAuthenticatedDecryptionFailed, got %v", err)
	}
}

func TestSealOpenDeviceString_RoundTrip(t *testing.T) {
	key := newTestDeviceKey(t, "device")
	plain := []byte("cached content")

	blob, err := sealDeviceString(key, plain)
	if err != nil {
		t.Fatalf("sealDeviceString error: %v", err)
	}

	got, err := openDeviceString(key, blob)
	if err != nil {
		t.Fatalf("openDeviceString error: %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("plaintext mismatch")
	}

	_, err = openDeviceString(newTestDeviceKey(t, "other device"), blob)
	if !errors.Is(err, ErrAuthenticatedDecryptionFailed) {
		t.Fatalf("expected ErrAuthenticatedDecryptionFailed for foreign device key, got %v", err)
	}
}

func TestOpenItemKey(t *testing.T) {
	shareKey := newTestVaultKey(t)
	itemKey := newTestVaultKey(t)

	blob, err := sealVaultString(shareKey, itemKey[:], crypto.TagItemKey)
	if err != nil {
		t.Fatalf("sealVaultString error: %v", err)
	}

	got, err := openItemKey(shareKey, blob)
	if err != nil {
		t.Fatalf("openItemKey error: %v", err)
	}
	if got != itemKey {
		t.Fatalf("item key mismatch")
	}
}

func TestOpenItemKey_InvalidLength(t *testing.T) {
	shareKey := newTestVaultKey(t)

	blob, err := sealVaultString(shareKey, []byte("short"), crypto.TagItemKey)
	if err != nil {
		t.Fatalf("sealVaultString error: %v", err)
	}

	_, err = openItemKey(shareKey, blob)
	if !errors.Is(err, crypto.ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength in chain, got %v", err)
	}
}
