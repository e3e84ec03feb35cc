// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// shareKeyRepository is the private implementation of [ShareKeyRepository].
type shareKeyRepository struct {
	local  store.LocalShareKeyRepository
	remote adapter.KeySource
}

// NewShareKeyRepository returns a ShareKeyRepository that keeps the sealed
// share keys in local, fetching them from remote on a miss.
func NewShareKeyRepository(local store.LocalShareKeyRepository, remote adapter.KeySource) ShareKeyRepository {
	return &shareKeyRepository{
		local:  local,
		remote: remote,
	}
}

// GetShareKeys implements [ShareKeyRepository]. Local keys win; an empty
// local set is filled from the server.
func (r *shareKeyRepository) GetShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error) {
	keys, err := r.local.GetShareKeys(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("get local share keys: %w", err)
	}
	if len(keys) > 0 {
		return keys, nil
	}

	return r.RefreshShareKeys(ctx, shareID)
}

// RefreshShareKeys implements [ShareKeyRepository]. The server's key list
// replaces the local one for the share.
func (r *shareKeyRepository) RefreshShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error) {
	keys, err := r.remote.ListShareKeys(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("list remote share keys: %w", mapAdapterError(err))
	}

	for i := range keys {
		keys[i].ShareID = shareID
	}

	if err = r.local.ReplaceShareKeys(ctx, shareID, keys); err != nil {
		return nil, fmt.Errorf("store share keys: %w", err)
	}

	return keys, nil
}
