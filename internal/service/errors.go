// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrKeysNotFound is returned when a share has no encrypted key at the
	// requested rotation, or no keys at all.
	ErrKeysNotFound = errors.New("share keys not found")

	ErrBase64DecodeFailed            = errors.New("base64 decode failed")
	ErrAuthenticatedDecryptionFailed = errors.New("authenticated decryption failed")

	ErrItemNotFound    = errors.New("item not found")
	ErrInactiveUserKey = errors.New("inactive user key")

	// ErrInvalidItemContent is returned when decrypted content is not a valid
	// ItemContent document.
	ErrInvalidItemContent = errors.New("invalid item content")

	// ErrUnexpected marks states that well-formed input cannot produce, such
	// as a move without items or a server answer of the wrong length.
	ErrUnexpected = errors.New("unexpected state")
)
