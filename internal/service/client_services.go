// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ClientServices groups the client-side services sharing one key cache.
type ClientServices struct {
	ShareKeys ShareKeyRepository
	Keys      KeyCache
	Items     EncryptedItemStore
	Sync      SyncEngine
	SyncJob   ClientSyncJob
}

// NewClientServices wires the services over the local storages and the
// server adapter. userKeys opens share keys; deviceKeys protects the local
// item cache.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	userKeys crypto.UserKeyProvider,
	deviceKeys crypto.DeviceKeyProvider,
	cfg config.ClientApp,
	logger *logger.Logger,
) *ClientServices {
	shareKeys := NewShareKeyRepository(storages.ShareKeys, serverAdapter)
	keys := NewKeyCache(shareKeys, serverAdapter, userKeys)
	items := NewEncryptedItemStore(keys, storages.Items, serverAdapter, deviceKeys, cfg.BatchSize, logger)
	engine := NewSyncEngine(storages, serverAdapter, items, shareKeys, logger)

	return &ClientServices{
		ShareKeys: shareKeys,
		Keys:      keys,
		Items:     items,
		Sync:      engine,
		SyncJob:   NewClientSyncJob(engine, logger),
	}
}
