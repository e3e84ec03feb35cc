// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-pass-vault").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-pass-vault", cfg.Log.FilePath)

	userID, err := utils.ParseUserIDFromJWT(cfg.Adapter.AccessToken)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid access token")
	}
	ctx := utils.WithUserID(context.Background(), userID)

	userKeys, err := crypto.LoadUserKeyring(cfg.App.UserKeysPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading user keys")
	}

	deviceKey, err := crypto.DeriveDeviceKey([]byte(cfg.App.DeviceSecret), []byte(strconv.FormatInt(userID, 10)))
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving device key")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, serverAdapter, userKeys, crypto.StaticDeviceKey(deviceKey), cfg.App, log)

	app, err := client.NewApp(services, storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
