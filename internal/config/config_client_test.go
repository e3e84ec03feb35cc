// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:      "hk",
			DeviceSecret: "secret",
			UserKeysPath: "keys.json",
		},
		Storage: Storage{DB: DB{DSN: "vault.db"}},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: time.Second,
			AccessToken:    "tok",
		},
		Workers: Workers{SyncInterval: time.Minute},
		Log:     Log{FilePath: "client.log"},
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := newClientConfig(validStructuredConfig())

	assert.Equal(t, DefaultBatchSize, cfg.App.BatchSize)
	assert.Equal(t, "secret", cfg.App.DeviceSecret)
	assert.Equal(t, "keys.json", cfg.App.UserKeysPath)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "tok", cfg.Adapter.AccessToken)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "client.log", cfg.Log.FilePath)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsBatchSize(t *testing.T) {
	structured := validStructuredConfig()
	structured.App.BatchSize = 7

	assert.Equal(t, 7, newClientConfig(structured).App.BatchSize)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "empty dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no token", mutate: func(cfg *StructuredConfig) { cfg.Adapter.AccessToken = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no interval", mutate: func(cfg *StructuredConfig) { cfg.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no device secret", mutate: func(cfg *StructuredConfig) { cfg.App.DeviceSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no user keys", mutate: func(cfg *StructuredConfig) { cfg.App.UserKeysPath = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			structured := validStructuredConfig()
			tt.mutate(structured)

			err := newClientConfig(structured).validate()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
