// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func Test_onConflictUpdate(t *testing.T) {
	got := onConflictUpdate([]string{"share_id", "key_rotation"}, shareKeyColumns)

	assert.True(t, strings.HasPrefix(got, "ON CONFLICT(share_id, key_rotation) DO UPDATE SET "))
	assert.Contains(t, got, "encrypted_key = excluded.encrypted_key")
	assert.Contains(t, got, "user_key_id = excluded.user_key_id")
	assert.NotContains(t, got, "share_id = excluded.share_id")
	assert.NotContains(t, got, "key_rotation = excluded.key_rotation")
}

func Test_chunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want [][2]int
	}{
		{name: "empty", n: 0, size: 50, want: [][2]int{}},
		{name: "exact", n: 100, size: 50, want: [][2]int{{0, 50}, {50, 100}}},
		{name: "remainder", n: 101, size: 50, want: [][2]int{{0, 50}, {50, 100}, {100, 101}}},
		{name: "smaller than size", n: 3, size: 50, want: [][2]int{{0, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunk(tt.n, tt.size))
		})
	}
}

func Test_buildSelectItemsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.ItemFilter
		wantParts  []string
		wantNoPart string
		wantArgs   []any
	}{
		{
			name:       "no filter",
			filter:     models.ItemFilter{},
			wantNoPart: "WHERE",
			wantArgs:   nil,
		},
		{
			name:      "share and state",
			filter:    models.ItemFilter{ShareID: "s1", State: models.ItemStateTrashed},
			wantParts: []string{"share_id = ?", "state = ?"},
			wantArgs:  []any{"s1", 2},
		},
		{
			name:      "pinned logins",
			filter:    models.ItemFilter{PinnedOnly: true, LoginOnly: true},
			wantParts: []string{"pinned = ?", "is_login_item = ?"},
			wantArgs:  []any{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectItemsQuery(tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM items")
			assert.Contains(t, query, "ORDER BY modify_time DESC, item_id")
			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			if tt.wantNoPart != "" {
				assert.NotContains(t, query, tt.wantNoPart)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildUpsertItemsQuery_Placeholders(t *testing.T) {
	items := []models.CachedItem{
		{ShareID: "s1", ItemID: "a", EncryptedContent: "x"},
		{ShareID: "s1", ItemID: "b", EncryptedContent: "y"},
	}

	query, args, err := buildUpsertItemsQuery(items)
	require.NoError(t, err)

	assert.Len(t, args, 2*len(itemColumns))
	assert.Equal(t, 2*len(itemColumns), strings.Count(query, "?"))
	assert.Contains(t, query, "ON CONFLICT(share_id, item_id) DO UPDATE SET")
	assert.NotContains(t, query, "$1")
}

func Test_buildDeleteByShareQuery(t *testing.T) {
	query, args, err := buildDeleteByShareQuery("share_keys", []string{"s1", "s2"})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM share_keys WHERE share_id IN (?,?)", query)
	assert.Equal(t, []any{"s1", "s2"}, args)
}
