// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// syncEngine is the private implementation of [SyncEngine].
type syncEngine struct {
	shares store.LocalShareRepository
	events store.LocalEventRepository

	remoteShares adapter.ShareSource
	remoteEvents adapter.EventSource

	items     EncryptedItemStore
	shareKeys ShareKeyRepository

	logger *logger.Logger
}

// NewSyncEngine constructs a [SyncEngine] over the local share and event
// repositories of storages. Item and share key changes are applied through
// items and shareKeys.
func NewSyncEngine(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	items EncryptedItemStore,
	shareKeys ShareKeyRepository,
	logger *logger.Logger,
) SyncEngine {
	return &syncEngine{
		shares:       storages.Shares,
		events:       storages.Events,
		remoteShares: serverAdapter,
		remoteEvents: serverAdapter,
		items:        items,
		shareKeys:    shareKeys,
		logger:       logger,
	}
}

// Sync implements [SyncEngine]. It reconciles the local share set with the server, then brings every
// share up to date concurrently. The first share to fail cancels the others
// and its error is returned.
func (e *syncEngine) Sync(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		log = &logger.Logger{Logger: log.With().Int64("user_id", userID).Logger()}
	}

	if ctx.Err() != nil {
		return false, nil
	}

	local, remote, err := e.fetchShares(ctx)
	if err != nil {
		return abort(ctx, false, err)
	}

	deleted, local, err := e.reconcileShares(ctx, local, remote)
	if err != nil {
		return abort(ctx, false, err)
	}

	known := make(map[string]struct{}, len(local))
	for _, share := range local {
		known[share.ShareID] = struct{}{}
	}

	var found atomic.Bool
	found.Store(deleted)

	g, gctx := errgroup.WithContext(ctx)
	for _, share := range remote {
		_, exists := known[share.ShareID]

		g.Go(func() error {
			var (
				changed  bool
				shareErr error
			)
			if exists {
				changed, shareErr = e.syncShare(gctx, share)
			} else {
				changed, shareErr = e.syncNewShare(gctx, share)
			}

			if changed {
				found.Store(true)
			}
			if shareErr != nil {
				return fmt.Errorf("sync share %s: %w", share.ShareID, shareErr)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		log.Err(err).Str("func", "syncEngine.Sync").Msg("sync failed")
		return abort(ctx, found.Load(), err)
	}

	log.Debug().Bool("changes", found.Load()).Int("shares", len(remote)).Msg("sync finished")
	return found.Load(), nil
}

func (e *syncEngine) fetchShares(ctx context.Context) (local, remote []models.Share, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var localErr error
		if local, localErr = e.shares.GetAllShares(gctx); localErr != nil {
			return fmt.Errorf("get local shares: %w", localErr)
		}
		return nil
	})
	g.Go(func() error {
		var remoteErr error
		if remote, remoteErr = e.remoteShares.ListShares(gctx); remoteErr != nil {
			return fmt.Errorf("list remote shares: %w", mapAdapterError(remoteErr))
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	return local, remote, nil
}

// reconcileShares deletes the local shares the server no longer lists and
// returns the reloaded local set.
func (e *syncEngine) reconcileShares(ctx context.Context, local, remote []models.Share) (bool, []models.Share, error) {
	log := logger.FromContext(ctx)

	remoteIDs := make(map[string]struct{}, len(remote))
	for _, share := range remote {
		remoteIDs[share.ShareID] = struct{}{}
	}

	var stale []string
	for _, share := range local {
		if _, ok := remoteIDs[share.ShareID]; !ok {
			stale = append(stale, share.ShareID)
		}
	}
	if len(stale) == 0 {
		return false, local, nil
	}

	if err := e.shares.DeleteShares(ctx, stale...); err != nil {
		return false, nil, fmt.Errorf("delete stale shares: %w", err)
	}
	log.Info().Strs("share_ids", stale).Msg("removed shares no longer on server")

	if err := e.items.ReloadPinned(ctx); err != nil {
		return false, nil, err
	}

	reloaded, err := e.shares.GetAllShares(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("reload local shares: %w", err)
	}
	return true, reloaded, nil
}

// syncShare refreshes the metadata of a known share and applies its events.
func (e *syncEngine) syncShare(ctx context.Context, share models.Share) (bool, error) {
	if err := e.shares.UpsertShares(ctx, share); err != nil {
		return abort(ctx, false, err)
	}
	return e.applyEvents(ctx, share.ShareID)
}

// syncNewShare stores a share seen for the first time, pulls all of its
// items and starts tracking its events from the latest one.
func (e *syncEngine) syncNewShare(ctx context.Context, share models.Share) (bool, error) {
	log := logger.FromContext(ctx)

	if err := e.shares.UpsertShares(ctx, share); err != nil {
		return abort(ctx, false, err)
	}

	if err := e.items.RefreshItems(ctx, share.ShareID); err != nil {
		if errors.Is(err, ErrInactiveUserKey) {
			// forget the share so the next sync onboards it from scratch
			log.Warn().Err(err).Str("share_id", share.ShareID).Msg("share keys belong to an inactive user key, skipping share")
			if delErr := e.shares.DeleteShares(ctx, share.ShareID); delErr != nil {
				return abort(ctx, false, delErr)
			}
			return false, nil
		}
		return abort(ctx, true, err)
	}

	eventID, err := e.remoteEvents.GetLatestEventID(ctx, share.ShareID)
	if err != nil {
		return abort(ctx, true, mapAdapterError(err))
	}
	if err = e.events.SetLastEventID(ctx, share.ShareID, eventID); err != nil {
		return abort(ctx, true, err)
	}

	log.Info().Str("share_id", share.ShareID).Msg("new share synced")
	return true, nil
}

// applyEvents pulls event batches until the server has none pending.
func (e *syncEngine) applyEvents(ctx context.Context, shareID string) (bool, error) {
	log := logger.FromContext(ctx)
	found := false

	for {
		if ctx.Err() != nil {
			return found, nil
		}

		lastEventID, err := e.lastEventID(ctx, shareID)
		if err != nil {
			return abort(ctx, found, err)
		}

		batch, err := e.remoteEvents.GetEvents(ctx, shareID, lastEventID)
		if err != nil {
			return abort(ctx, found, mapAdapterError(err))
		}

		if batch.LatestEventID != "" {
			if err = e.events.SetLastEventID(ctx, shareID, batch.LatestEventID); err != nil {
				return abort(ctx, found, err)
			}
		}

		if batch.FullRefresh {
			log.Info().Str("share_id", shareID).Msg("server requested full refresh")
			if err = e.items.RefreshItems(ctx, shareID); err != nil {
				return abort(ctx, found, err)
			}
			return true, nil
		}

		changed, err := e.applyBatch(ctx, shareID, batch)
		found = found || changed
		if err != nil {
			return abort(ctx, found, err)
		}

		if !batch.EventsPending {
			return found, nil
		}
	}
}

// lastEventID returns the stored event id of the share, or starts tracking
// from the server's latest one when none is stored.
func (e *syncEngine) lastEventID(ctx context.Context, shareID string) (string, error) {
	eventID, err := e.events.GetLastEventID(ctx, shareID)
	if err == nil {
		return eventID, nil
	}
	if !errors.Is(err, store.ErrEventIDNotFound) {
		return "", err
	}

	eventID, err = e.remoteEvents.GetLatestEventID(ctx, shareID)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if err = e.events.SetLastEventID(ctx, shareID, eventID); err != nil {
		return "", err
	}
	return eventID, nil
}

// applyBatch applies the incremental parts of a batch in a fixed order and
// reports whether any of them was non-empty.
func (e *syncEngine) applyBatch(ctx context.Context, shareID string, batch models.SyncEventBatch) (bool, error) {
	found := false

	if batch.UpdatedShare != nil {
		if err := e.shares.UpsertShares(ctx, *batch.UpdatedShare); err != nil {
			return found, err
		}
		found = true
	}

	if len(batch.UpdatedItems) > 0 {
		if err := e.items.UpsertItems(ctx, shareID, batch.UpdatedItems); err != nil {
			return found, err
		}
		found = true
	}

	if len(batch.DeletedItemIDs) > 0 {
		if err := e.items.DeleteLocalItems(ctx, shareID, batch.DeletedItemIDs); err != nil {
			return found, err
		}
		found = true
	}

	if len(batch.LastUseItems) > 0 {
		if err := e.items.UpdateLastUseTimes(ctx, shareID, batch.LastUseItems); err != nil {
			return found, err
		}
		found = true
	}

	if batch.NewKeyRotation != nil {
		if _, err := e.shareKeys.RefreshShareKeys(ctx, shareID); err != nil {
			return found, err
		}
		found = true
	}

	return found, nil
}

// abort turns err into a clean stop when ctx was cancelled: the caller asked
// for it, so the work done so far is reported without an error.
func abort(ctx context.Context, found bool, err error) (bool, error) {
	if ctx.Err() != nil {
		return found, nil
	}
	return found, err
}
