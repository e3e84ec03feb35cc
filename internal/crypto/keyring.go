// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/nacl/box"
)

// UserKey is one asymmetric key pair of the user. Share keys are sealed to
// its public half with an anonymous NaCl box.
type UserKey struct {
	ID         string
	PublicKey  *[32]byte
	PrivateKey *[32]byte
	Active     bool
}

// UserKeyring is the in-memory set of the user's key pairs.
// It implements [UserKeyProvider].
type UserKeyring struct {
	mu   sync.RWMutex
	keys map[string]UserKey
}

// NewUserKeyring returns a keyring holding keys.
func NewUserKeyring(keys ...UserKey) *UserKeyring {
	r := &UserKeyring{keys: make(map[string]UserKey, len(keys))}
	for _, k := range keys {
		r.keys[k.ID] = k
	}
	return r
}

// GenerateUserKey creates a fresh active key pair.
func GenerateUserKey(id string) (UserKey, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return UserKey{}, fmt.Errorf("generate user key: %w", err)
	}
	return UserKey{ID: id, PublicKey: pub, PrivateKey: priv, Active: true}, nil
}

// Add inserts or replaces a key.
func (r *UserKeyring) Add(key UserKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[key.ID] = key
}

// SetActive flips the active flag of the key with the given id.
func (r *UserKeyring) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[id]; ok {
		k.Active = active
		r.keys[id] = k
	}
}

// OpenShareKey implements [UserKeyProvider].
func (r *UserKeyring) OpenShareKey(userKeyID string, sealed []byte) (VaultKey, error) {
	r.mu.RLock()
	key, ok := r.keys[userKeyID]
	r.mu.RUnlock()

	if !ok {
		return VaultKey{}, fmt.Errorf("%w: %s", ErrUnknownUserKey, userKeyID)
	}
	if !key.Active {
		return VaultKey{}, fmt.Errorf("%w: %s", ErrInactiveUserKey, userKeyID)
	}

	raw, ok := box.OpenAnonymous(nil, sealed, key.PublicKey, key.PrivateKey)
	if !ok {
		return VaultKey{}, ErrDecryptionFailed
	}
	return NewVaultKey(raw)
}

// SealShareKey seals a share key to a user public key. Used when a share is
// created locally and by tests building remote fixtures.
func SealShareKey(recipient *[32]byte, key VaultKey) ([]byte, error) {
	sealed, err := box.SealAnonymous(nil, key[:], recipient, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("seal share key: %w", err)
	}
	return sealed, nil
}

type userKeyFileEntry struct {
	ID         string `json:"id"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Active     bool   `json:"active"`
}

// LoadUserKeyring reads a JSON array of base64 key pairs from path.
func LoadUserKeyring(path string) (*UserKeyring, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading user key file: %w", err)
	}
	defer f.Close()

	var entries []userKeyFileEntry
	if err = json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("error decoding user key file: %w", err)
	}

	ring := NewUserKeyring()
	for _, e := range entries {
		pub, err := decodeKey32(e.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("user key %s public: %w", e.ID, err)
		}
		priv, err := decodeKey32(e.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("user key %s private: %w", e.ID, err)
		}
		ring.Add(UserKey{ID: e.ID, PublicKey: pub, PrivateKey: priv, Active: e.Active})
	}

	return ring, nil
}

func decodeKey32(s string) (*[32]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeyLength, len(raw))
	}
	var out [32]byte
	copy(out[:], raw)
	return &out, nil
}
