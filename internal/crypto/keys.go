// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the size in bytes of every symmetric key.
const KeySize = 32

// VaultKey is a share key or an item key. Ciphertexts are
// nonce (12 bytes) ‖ AES-256-GCM(ciphertext ‖ tag).
type VaultKey [KeySize]byte

// DeviceKey protects the local cache at rest. Ciphertexts are
// nonce (24 bytes) ‖ XChaCha20-Poly1305(ciphertext ‖ tag).
type DeviceKey [KeySize]byte

// NewVaultKey copies b into a VaultKey.
func NewVaultKey(b []byte) (VaultKey, error) {
	var k VaultKey
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// GenerateVaultKey reads a fresh random VaultKey from the OS CSPRNG.
func GenerateVaultKey() (VaultKey, error) {
	var k VaultKey
	if _, err := io.ReadFull(rand.Reader, k[:]); err != nil {
		return k, fmt.Errorf("generate vault key: %w", err)
	}
	return k, nil
}

// Seal encrypts plaintext with AES-256-GCM, binding tag as associated data.
func (k VaultKey) Seal(plaintext []byte, tag string) ([]byte, error) {
	gcm, err := k.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// nonce ‖ ciphertext, so Open can split it out.
	return gcm.Seal(nonce, nonce, plaintext, []byte(tag)), nil
}

// Open reverses Seal. tag must match the one used to seal.
func (k VaultKey) Open(blob []byte, tag string) ([]byte, error) {
	gcm, err := k.aead()
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(tag))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

func (k VaultKey) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(k[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Argon2id parameters for the device key (OWASP 2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
const (
	deviceKeyArgonTime    uint32 = 1
	deviceKeyArgonMemory  uint32 = 64 * 1024
	deviceKeyArgonThreads uint8  = 4
)

// deviceKeyDomain separates device key salts from any other use of the
// same input.
const deviceKeyDomain = "go-pass-vault device key"

// DeriveDeviceKey derives the local at-rest key from a user configured device
// secret with Argon2id. salt may be nil or short; it is hashed together with
// a fixed domain string into a 32-byte Argon2 salt.
func DeriveDeviceKey(secret, salt []byte) (DeviceKey, error) {
	var k DeviceKey
	if len(secret) == 0 {
		return k, fmt.Errorf("%w: empty device secret", ErrInvalidKeyLength)
	}

	h := sha256.New()
	h.Write([]byte(deviceKeyDomain))
	h.Write(salt)

	copy(k[:], argon2.IDKey(secret, h.Sum(nil), deviceKeyArgonTime, deviceKeyArgonMemory, deviceKeyArgonThreads, KeySize))
	return k, nil
}

// Seal encrypts plaintext for the local cache.
func (k DeviceKey) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k[:])
	if err != nil {
		return nil, fmt.Errorf("create xchacha20: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+aead.Overhead())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (k DeviceKey) Open(blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k[:])
	if err != nil {
		return nil, fmt.Errorf("create xchacha20: %w", err)
	}

	if len(blob) < chacha20poly1305.NonceSizeX {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:chacha20poly1305.NonceSizeX], blob[chacha20poly1305.NonceSizeX:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
