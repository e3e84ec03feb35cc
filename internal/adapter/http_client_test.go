// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, r http.Handler) *httpServerAdapter {
	t.Helper()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	adapterCfg := config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second, AccessToken: "token-1"}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	require.ErrorIs(t, err, ErrEmptyAddress)
}

func TestToken(t *testing.T) {
	a := newTestAdapter(t, chi.NewRouter())
	assert.Equal(t, "token-1", a.Token())

	a.SetToken("  token-2 ")
	assert.Equal(t, "token-2", a.Token())
}

func TestListShares_SendsAuthAndRequestID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer token-1", req.Header.Get("Authorization"))
		assert.Equal(t, "req-42", req.Header.Get(headerRequestID))
		writeJSON(t, w, http.StatusOK, models.SharesResponse{Shares: []models.Share{
			{ShareID: "s1", Role: models.ShareRoleAdmin},
			{ShareID: "s2", Role: models.ShareRoleRead},
		}})
	})

	a := newTestAdapter(t, r)
	shares, err := a.ListShares(utils.WithRequestID(context.Background(), "req-42"))
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "s2", shares[1].ShareID)
}

func TestListShares_GeneratesRequestID(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares", func(w http.ResponseWriter, req *http.Request) {
		assert.NotEmpty(t, req.Header.Get(headerRequestID))
		writeJSON(t, w, http.StatusOK, models.SharesResponse{})
	})

	a := newTestAdapter(t, r)
	shares, err := a.ListShares(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestEvents(t *testing.T) {
	rotation := int64(3)

	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/events/latest", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "s1", chi.URLParam(req, "shareID"))
		writeJSON(t, w, http.StatusOK, models.LastEventIDResponse{EventID: "evt-7"})
	})
	r.Get("/api/v1/shares/{shareID}/events/{eventID}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "evt-7", chi.URLParam(req, "eventID"))
		writeJSON(t, w, http.StatusOK, models.SyncEventBatch{
			LatestEventID:  "evt-8",
			EventsPending:  true,
			DeletedItemIDs: []string{"i1"},
			NewKeyRotation: &rotation,
		})
	})

	a := newTestAdapter(t, r)

	eventID, err := a.GetLatestEventID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "evt-7", eventID)

	batch, err := a.GetEvents(context.Background(), "s1", eventID)
	require.NoError(t, err)
	assert.Equal(t, "evt-8", batch.LatestEventID)
	assert.True(t, batch.EventsPending)
	assert.Equal(t, []string{"i1"}, batch.DeletedItemIDs)
	require.NotNil(t, batch.NewKeyRotation)
	assert.Equal(t, int64(3), *batch.NewKeyRotation)
}

func TestListShareKeys_Paginates(t *testing.T) {
	var calls atomic.Int32

	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/keys", func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		switch req.URL.Query().Get("page") {
		case "0":
			writeJSON(t, w, http.StatusOK, models.ShareKeysPage{Total: 3, Keys: []models.ShareKey{
				{ShareID: "s1", KeyRotation: 1}, {ShareID: "s1", KeyRotation: 2},
			}})
		case "1":
			writeJSON(t, w, http.StatusOK, models.ShareKeysPage{Total: 3, Keys: []models.ShareKey{
				{ShareID: "s1", KeyRotation: 3},
			}})
		default:
			t.Errorf("unexpected page %q", req.URL.Query().Get("page"))
		}
	})

	a := newTestAdapter(t, r)
	keys, err := a.ListShareKeys(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, keys, 3)
	assert.Equal(t, int64(3), keys[2].KeyRotation)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetLatestItemKey(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/items/{itemID}/key/latest", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ItemKey{KeyRotation: 2, EncryptedKey: "sealed"})
	})

	a := newTestAdapter(t, r)
	key, err := a.GetLatestItemKey(context.Background(), "s1", "i1")
	require.NoError(t, err)
	assert.Equal(t, models.ItemKey{ShareID: "s1", ItemID: "i1", KeyRotation: 2, EncryptedKey: "sealed"}, key)
}

func TestListItems_FollowsLastToken(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/items", func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Query().Get("since") {
		case "":
			writeJSON(t, w, http.StatusOK, models.ItemsPage{Total: 3, LastToken: "t1", Items: []models.ItemRevision{{ItemID: "a"}, {ItemID: "b"}}})
		case "t1":
			writeJSON(t, w, http.StatusOK, models.ItemsPage{Total: 3, LastToken: "t2", Items: []models.ItemRevision{{ItemID: "c"}}})
		case "t2":
			writeJSON(t, w, http.StatusOK, models.ItemsPage{Total: 3})
		default:
			t.Errorf("unexpected since %q", req.URL.Query().Get("since"))
		}
	})

	a := newTestAdapter(t, r)
	items, err := a.ListItems(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[2].ItemID)
}

func TestListItems_IgnoresMissingTotal(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/items", func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Query().Get("since") {
		case "":
			writeJSON(t, w, http.StatusOK, models.ItemsPage{LastToken: "t1", Items: []models.ItemRevision{{ItemID: "a"}}})
		case "t1":
			writeJSON(t, w, http.StatusOK, models.ItemsPage{Items: []models.ItemRevision{{ItemID: "b"}}})
		default:
			t.Errorf("unexpected since %q", req.URL.Query().Get("since"))
		}
	})

	a := newTestAdapter(t, r)
	items, err := a.ListItems(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].ItemID)
}

func TestListItems_PageLimit(t *testing.T) {
	var calls atomic.Int32

	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/items", func(w http.ResponseWriter, req *http.Request) {
		n := calls.Add(1)
		writeJSON(t, w, http.StatusOK, models.ItemsPage{
			LastToken: "t" + strconv.Itoa(int(n)),
			Items:     []models.ItemRevision{{ItemID: "i" + strconv.Itoa(int(n))}},
		})
	})

	a := newTestAdapter(t, r)
	a.maxPages = 3

	items, err := a.ListItems(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrTooManyPages)
	assert.Nil(t, items)
	assert.Equal(t, int32(3), calls.Load())
}

func TestListShareKeys_MissingTotalReadsUntilEmptyPage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares/{shareID}/keys", func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Query().Get("page") {
		case "0":
			writeJSON(t, w, http.StatusOK, models.ShareKeysPage{Keys: []models.ShareKey{{ShareID: "s1", KeyRotation: 1}}})
		case "1":
			writeJSON(t, w, http.StatusOK, models.ShareKeysPage{Keys: []models.ShareKey{{ShareID: "s1", KeyRotation: 2}}})
		default:
			writeJSON(t, w, http.StatusOK, models.ShareKeysPage{})
		}
	})

	a := newTestAdapter(t, r)
	keys, err := a.ListShareKeys(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestCreateItem_SignsBody(t *testing.T) {
	utils.InitHasherPool(testHashKey)

	r := chi.NewRouter()
	r.Post("/api/v1/shares/{shareID}/items", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(string(body), testHashKey), req.Header.Get(headerHash))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var in models.CreateItemRequest
		require.NoError(t, json.Unmarshal(body, &in))
		assert.Equal(t, int64(4), in.KeyRotation)

		writeJSON(t, w, http.StatusOK, models.ItemResponse{Item: models.ItemRevision{ItemID: "new", Revision: 1}})
	})

	a := newTestAdapter(t, r)
	rev, err := a.CreateItem(context.Background(), "s1", models.CreateItemRequest{KeyRotation: 4, Content: "c", ItemKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "new", rev.ItemID)
}

func TestItemMutations(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/v1/shares/{shareID}/items/{itemID}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ItemResponse{Item: models.ItemRevision{ItemID: chi.URLParam(req, "itemID"), Revision: 2}})
	})
	r.Post("/api/v1/shares/{shareID}/items/trash", func(w http.ResponseWriter, req *http.Request) {
		var in models.ItemBatchRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		out := make([]models.ItemStateChange, 0, len(in.Items))
		for _, it := range in.Items {
			out = append(out, models.ItemStateChange{ItemID: it.ItemID, Revision: it.Revision + 1, State: models.ItemStateTrashed})
		}
		writeJSON(t, w, http.StatusOK, models.ItemStateChangesResponse{Items: out})
	})
	r.Post("/api/v1/shares/{shareID}/items/untrash", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ItemStateChangesResponse{Items: []models.ItemStateChange{{ItemID: "a", State: models.ItemStateActive}}})
	})
	r.Delete("/api/v1/shares/{shareID}/items", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Put("/api/v1/shares/{shareID}/items/share", func(w http.ResponseWriter, req *http.Request) {
		var in models.MoveItemsRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		assert.Equal(t, "dst", in.DestinationShareID)
		writeJSON(t, w, http.StatusOK, models.ItemRevisionsResponse{Items: []models.ItemRevision{{ItemID: "moved"}}})
	})
	r.Post("/api/v1/shares/{shareID}/items/{itemID}/pin", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ItemStateChangeResponse{Item: models.ItemStateChange{ItemID: "a", Pinned: true}})
	})
	r.Delete("/api/v1/shares/{shareID}/items/{itemID}/pin", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ItemStateChangeResponse{Item: models.ItemStateChange{ItemID: "a", Pinned: false}})
	})

	a := newTestAdapter(t, r)
	ctx := context.Background()
	batch := models.ItemBatchRequest{Items: []models.ItemRevisionRef{{ItemID: "a", Revision: 1}, {ItemID: "b", Revision: 5}}}

	rev, err := a.UpdateItem(ctx, "s1", "a", models.UpdateItemRequest{LastRevision: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev.Revision)

	trashed, err := a.TrashItems(ctx, "s1", batch)
	require.NoError(t, err)
	require.Len(t, trashed, 2)
	assert.Equal(t, int64(6), trashed[1].Revision)

	restored, err := a.UntrashItems(ctx, "s1", batch)
	require.NoError(t, err)
	assert.Equal(t, models.ItemStateActive, restored[0].State)

	require.NoError(t, a.DeleteItems(ctx, "s1", batch))

	moved, err := a.MoveItems(ctx, "s1", models.MoveItemsRequest{DestinationShareID: "dst"})
	require.NoError(t, err)
	assert.Equal(t, "moved", moved[0].ItemID)

	pinned, err := a.PinItem(ctx, "s1", "a")
	require.NoError(t, err)
	assert.True(t, pinned.Pinned)

	unpinned, err := a.UnpinItem(ctx, "s1", "a")
	require.NoError(t, err)
	assert.False(t, unpinned.Pinned)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr []error
		code    int
	}{
		{name: "not found", status: http.StatusNotFound, body: "no such share", wantErr: []error{ErrNotFound}},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: []error{ErrUnauthorized}},
		{name: "forbidden", status: http.StatusForbidden, wantErr: []error{ErrForbidden}},
		{name: "bad request", status: http.StatusBadRequest, wantErr: []error{ErrBadRequest}},
		{name: "conflict", status: http.StatusConflict, body: `{"code":2011,"error":"stale revision"}`, wantErr: []error{ErrConflict, ErrItemRevisionConflict}, code: CodeItemRevisionConflict},
		{name: "inactive user key code", status: http.StatusUnprocessableEntity, body: `{"code":2001,"error":"key"}`, wantErr: []error{ErrUnprocessable, ErrInactiveUserKey}, code: CodeInactiveUserKey},
		{name: "inactive user key text", status: http.StatusBadRequest, body: "Inactive user key", wantErr: []error{ErrBadRequest, ErrInactiveUserKey}, code: CodeInactiveUserKey},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: []error{ErrBadGateway}},
		{name: "internal", status: http.StatusInternalServerError, wantErr: []error{ErrInternalServerError}},
		{name: "teapot", status: http.StatusTeapot, wantErr: []error{ErrUnexpectedStatus}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/v1/shares", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			a := newTestAdapter(t, r)
			_, err := a.ListShares(context.Background())
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.NotEmpty(t, apiErr.Error())
		})
	}
}

func TestDecodeError(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/shares", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	a := newTestAdapter(t, r)
	_, err := a.ListShares(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
