// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInactiveUserKey):
		return fmt.Errorf("%w: %w", ErrInactiveUserKey, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)
	}

	return err
}

// mapCryptoError translates key and cipher failures into service errors.
func mapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInactiveUserKey):
		return fmt.Errorf("%w: %w", ErrInactiveUserKey, err)
	case errors.Is(err, crypto.ErrDecryptionFailed),
		errors.Is(err, crypto.ErrCiphertextTooShort),
		errors.Is(err, crypto.ErrInvalidKeyLength):
		return fmt.Errorf("%w: %w", ErrAuthenticatedDecryptionFailed, err)
	}

	return err
}

// mapStoreError translates local repository misses into service errors.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)
	}

	return err
}
