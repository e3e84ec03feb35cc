// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned when a blob is shorter than the nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed is returned when authenticated decryption fails:
	// wrong key, wrong associated data, or tampered ciphertext.
	ErrDecryptionFailed = errors.New("authenticated decryption failed")

	// ErrInvalidKeyLength is returned when key material is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInactiveUserKey is returned when a share key is sealed to a user key
	// that is present but no longer active.
	ErrInactiveUserKey = errors.New("user key is inactive")

	// ErrUnknownUserKey is returned when the keyring has no key with the
	// requested id.
	ErrUnknownUserKey = errors.New("unknown user key")
)
