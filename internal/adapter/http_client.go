// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	headerRequestID = "X-Request-Id"
	headerHash      = "X-Hash"

	// defaultMaxPages guards pagination loops against a server that never
	// stops returning a continuation token.
	defaultMaxPages = 10000
)

var (
	// ErrEmptyAddress is returned by NewHTTPServerAdapter without a server address.
	ErrEmptyAddress = errors.New("empty server address")

	// ErrTooManyPages is returned when a listing still has a continuation
	// after the page limit. A partial listing is never returned.
	ErrTooManyPages = errors.New("pagination limit exceeded")
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator
	sign   bool
	logger *logger.Logger

	maxPages int

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter].
// Request bodies are signed with the app hash key when one is configured.
func NewHTTPServerAdapter(cfg config.ClientAdapter, app config.ClientApp, log *logger.Logger) (ServerAdapter, error) {
	if cfg.HTTPAddress == "" {
		return nil, ErrEmptyAddress
	}

	if app.HashKey != "" {
		utils.InitHasherPool(app.HashKey)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		sign:   app.HashKey != "",
		logger: log,
		token:  strings.TrimSpace(cfg.AccessToken),

		maxPages: defaultMaxPages,
	}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do sends one request. body, when non-nil, is JSON encoded and signed; out,
// when non-nil, receives the decoded response.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, out any) error {
	req := h.authedRequest(ctx)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if h.sign {
			req.SetHeader(headerHash, utils.SignHex(payload))
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().
			Err(err).
			Str("func", "httpServerAdapter.do").
			Str("method", method).
			Str("path", path).
			Str("request_id", req.Header.Get(headerRequestID)).
			Msg("server returned an error")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func sharePath(shareID string, parts ...string) string {
	segments := append([]string{"/api/v1/shares", url.PathEscape(shareID)}, parts...)
	return strings.Join(segments, "/")
}

func (h *httpServerAdapter) ListShares(ctx context.Context) ([]models.Share, error) {
	var resp models.SharesResponse
	if err := h.do(ctx, http.MethodGet, "/api/v1/shares", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Shares, nil
}

func (h *httpServerAdapter) GetLatestEventID(ctx context.Context, shareID string) (string, error) {
	var resp models.LastEventIDResponse
	if err := h.do(ctx, http.MethodGet, sharePath(shareID, "events", "latest"), nil, &resp); err != nil {
		return "", err
	}
	return resp.EventID, nil
}

func (h *httpServerAdapter) GetEvents(ctx context.Context, shareID, sinceEventID string) (models.SyncEventBatch, error) {
	var batch models.SyncEventBatch
	err := h.do(ctx, http.MethodGet, sharePath(shareID, "events", url.PathEscape(sinceEventID)), nil, &batch)
	return batch, err
}

func (h *httpServerAdapter) ListShareKeys(ctx context.Context, shareID string) ([]models.ShareKey, error) {
	keys := make([]models.ShareKey, 0, 4)

	for page := 0; page < h.maxPages; page++ {
		var resp models.ShareKeysPage
		path := sharePath(shareID, "keys") + "?page=" + strconv.Itoa(page)
		if err := h.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}

		keys = append(keys, resp.Keys...)
		// a missing total means the server did not count; read until an empty page
		if len(resp.Keys) == 0 || (resp.Total > 0 && len(keys) >= resp.Total) {
			return keys, nil
		}
	}

	return nil, fmt.Errorf("%w: share %s keys after %d pages", ErrTooManyPages, shareID, h.maxPages)
}

func (h *httpServerAdapter) GetLatestItemKey(ctx context.Context, shareID, itemID string) (models.ItemKey, error) {
	var key models.ItemKey
	if err := h.do(ctx, http.MethodGet, sharePath(shareID, "items", url.PathEscape(itemID), "key", "latest"), nil, &key); err != nil {
		return models.ItemKey{}, err
	}
	if key.ShareID == "" {
		key.ShareID = shareID
	}
	if key.ItemID == "" {
		key.ItemID = itemID
	}
	return key, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, shareID string) ([]models.ItemRevision, error) {
	items := make([]models.ItemRevision, 0, 50)
	since := ""

	for page := 0; page < h.maxPages; page++ {
		path := sharePath(shareID, "items")
		if since != "" {
			path += "?since=" + url.QueryEscape(since)
		}

		var resp models.ItemsPage
		if err := h.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}

		items = append(items, resp.Items...)
		if resp.LastToken == "" || len(resp.Items) == 0 {
			return items, nil
		}
		since = resp.LastToken
	}

	return nil, fmt.Errorf("%w: share %s items after %d pages", ErrTooManyPages, shareID, h.maxPages)
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, shareID string, req models.CreateItemRequest) (models.ItemRevision, error) {
	var resp models.ItemResponse
	if err := h.do(ctx, http.MethodPost, sharePath(shareID, "items"), req, &resp); err != nil {
		return models.ItemRevision{}, err
	}
	return resp.Item, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, shareID, itemID string, req models.UpdateItemRequest) (models.ItemRevision, error) {
	var resp models.ItemResponse
	if err := h.do(ctx, http.MethodPut, sharePath(shareID, "items", url.PathEscape(itemID)), req, &resp); err != nil {
		return models.ItemRevision{}, err
	}
	return resp.Item, nil
}

func (h *httpServerAdapter) TrashItems(ctx context.Context, shareID string, req models.ItemBatchRequest) ([]models.ItemStateChange, error) {
	var resp models.ItemStateChangesResponse
	if err := h.do(ctx, http.MethodPost, sharePath(shareID, "items", "trash"), req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (h *httpServerAdapter) UntrashItems(ctx context.Context, shareID string, req models.ItemBatchRequest) ([]models.ItemStateChange, error) {
	var resp models.ItemStateChangesResponse
	if err := h.do(ctx, http.MethodPost, sharePath(shareID, "items", "untrash"), req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (h *httpServerAdapter) DeleteItems(ctx context.Context, shareID string, req models.ItemBatchRequest) error {
	return h.do(ctx, http.MethodDelete, sharePath(shareID, "items"), req, nil)
}

func (h *httpServerAdapter) MoveItems(ctx context.Context, shareID string, req models.MoveItemsRequest) ([]models.ItemRevision, error) {
	var resp models.ItemRevisionsResponse
	if err := h.do(ctx, http.MethodPut, sharePath(shareID, "items", "share"), req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (h *httpServerAdapter) PinItem(ctx context.Context, shareID, itemID string) (models.ItemStateChange, error) {
	var resp models.ItemStateChangeResponse
	if err := h.do(ctx, http.MethodPost, sharePath(shareID, "items", url.PathEscape(itemID), "pin"), nil, &resp); err != nil {
		return models.ItemStateChange{}, err
	}
	return resp.Item, nil
}

func (h *httpServerAdapter) UnpinItem(ctx context.Context, shareID, itemID string) (models.ItemStateChange, error) {
	var resp models.ItemStateChangeResponse
	if err := h.do(ctx, http.MethodDelete, sharePath(shareID, "items", url.PathEscape(itemID), "pin"), nil, &resp); err != nil {
		return models.ItemStateChange{}, err
	}
	return resp.Item, nil
}
