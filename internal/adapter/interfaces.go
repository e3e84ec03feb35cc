// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The service layer depends on the narrow source interfaces ([ShareSource],
// [EventSource], [KeySource], [ItemSource]); [ServerAdapter] aggregates them
// and is implemented over HTTP/REST by [NewHTTPServerAdapter].
//
// Error values defined in errors.go are mapped from HTTP status codes and
// server error codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrInactiveUserKey] for code 2001).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ShareSource lists the shares visible to the current user.
type ShareSource interface {
	ListShares(ctx context.Context) ([]models.Share, error)
}

// EventSource serves the per-share event stream.
type EventSource interface {
	// GetLatestEventID returns the newest event id of a share without any
	// changes attached. Used to start tracking a share after a full refresh.
	GetLatestEventID(ctx context.Context, shareID string) (string, error)

	// GetEvents returns the batch of changes after sinceEventID.
	GetEvents(ctx context.Context, shareID, sinceEventID string) (models.SyncEventBatch, error)
}

// KeySource serves encrypted share and item keys.
type KeySource interface {
	// ListShareKeys returns every key rotation of a share, sealed to the
	// user's keys.
	ListShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error)

	// GetLatestItemKey returns the newest item key sealed under its share key.
	GetLatestItemKey(ctx context.Context, shareID, itemID string) (models.ItemKey, error)
}

// ItemSource reads and mutates remote items.
type ItemSource interface {
	// ListItems returns every item revision of a share, following pagination.
	ListItems(ctx context.Context, shareID string) ([]models.ItemRevision, error)

	CreateItem(ctx context.Context, shareID string, req models.CreateItemRequest) (models.ItemRevision, error)
	UpdateItem(ctx context.Context, shareID, itemID string, req models.UpdateItemRequest) (models.ItemRevision, error)

	TrashItems(ctx context.Context, shareID string, req models.ItemBatchRequest) ([]models.ItemStateChange, error)
	UntrashItems(ctx context.Context, shareID string, req models.ItemBatchRequest) ([]models.ItemStateChange, error)
	DeleteItems(ctx context.Context, shareID string, req models.ItemBatchRequest) error

	// MoveItems moves items from shareID to req.DestinationShareID and
	// returns their revisions in the destination share.
	MoveItems(ctx context.Context, shareID string, req models.MoveItemsRequest) ([]models.ItemRevision, error)

	PinItem(ctx context.Context, shareID, itemID string) (models.ItemStateChange, error)
	UnpinItem(ctx context.Context, shareID, itemID string) (models.ItemStateChange, error)
}

// ServerAdapter defines transport-agnostic communication with the server.
// Implementations are responsible for serialisation, authentication header
// management, request signing and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	ShareSource
	EventSource
	KeySource
	ItemSource

	// SetToken replaces the bearer token attached to subsequent requests.
	SetToken(token string)
	// Token returns the current bearer token.
	Token() string
}
