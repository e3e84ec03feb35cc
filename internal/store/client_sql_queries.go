// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

// upsertChunkSize bounds the number of rows in one multi-row INSERT so that
// the statement stays below SQLite's bound variable limit.
const upsertChunkSize = 50

// psql is the statement builder for the local SQLite database.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var shareColumns = []string{
	"share_id", "vault_id", "address_id", "target_type", "owner", "shared",
	"role", "is_primary", "members", "current_key_rotation", "create_time",
}

var shareKeyColumns = []string{
	"share_id", "key_rotation", "encrypted_key", "user_key_id", "create_time",
}

var itemColumns = []string{
	"share_id", "item_id", "revision", "content_format_version", "key_rotation",
	"content", "item_key", "state", "pinned", "create_time", "modify_time",
	"last_use_time", "revision_time", "encrypted_content", "is_login_item",
}

const (
	getLastEventID = `SELECT last_event_id FROM share_events WHERE share_id = ?`
	setLastEventID = `INSERT INTO share_events (share_id, last_event_id) VALUES (?, ?)
		ON CONFLICT(share_id) DO UPDATE SET last_event_id = excluded.last_event_id`
	updateLastUseTime = `UPDATE items SET last_use_time = ? WHERE share_id = ? AND item_id = ?`
)

// onConflictUpdate renders an upsert suffix updating every non-key column
// from the proposed row.
func onConflictUpdate(keys []string, columns []string) string {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if isKey[c] {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}

	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s", strings.Join(keys, ", "), strings.Join(sets, ", "))
}

func buildSelectSharesQuery() (string, []any, error) {
	return psql.Select(shareColumns...).From("shares").OrderBy("create_time", "share_id").ToSql()
}

func buildSelectShareQuery(shareID string) (string, []any, error) {
	return psql.Select(shareColumns...).From("shares").Where(sq.Eq{"share_id": shareID}).ToSql()
}

func buildUpsertSharesQuery(shares []models.Share) (string, []any, error) {
	builder := psql.Insert("shares").Columns(shareColumns...)
	for _, s := range shares {
		builder = builder.Values(
			s.ShareID, s.VaultID, s.AddressID, s.TargetType, s.Owner, s.Shared,
			string(s.Role), s.Primary, s.Members, s.CurrentKeyRotation, s.CreateTime,
		)
	}

	return builder.Suffix(onConflictUpdate([]string{"share_id"}, shareColumns)).ToSql()
}

// buildDeleteByShareQuery deletes every row of table owned by shareIDs.
func buildDeleteByShareQuery(table string, shareIDs []string) (string, []any, error) {
	return psql.Delete(table).Where(sq.Eq{"share_id": shareIDs}).ToSql()
}

func buildSelectShareKeysQuery(shareID string) (string, []any, error) {
	return psql.Select(shareKeyColumns...).
		From("share_keys").
		Where(sq.Eq{"share_id": shareID}).
		OrderBy("key_rotation").
		ToSql()
}

func buildInsertShareKeysQuery(keys []models.ShareKey) (string, []any, error) {
	builder := psql.Insert("share_keys").Columns(shareKeyColumns...)
	for _, k := range keys {
		builder = builder.Values(k.ShareID, k.KeyRotation, k.EncryptedKey, k.UserKeyID, k.CreateTime)
	}

	return builder.Suffix(onConflictUpdate([]string{"share_id", "key_rotation"}, shareKeyColumns)).ToSql()
}

// buildSelectItemsQuery applies every non-zero field of filter.
func buildSelectItemsQuery(filter models.ItemFilter) (string, []any, error) {
	builder := psql.Select(itemColumns...).From("items")

	if filter.ShareID != "" {
		builder = builder.Where(sq.Eq{"share_id": filter.ShareID})
	}
	if filter.State != 0 {
		builder = builder.Where(sq.Eq{"state": int(filter.State)})
	}
	if filter.PinnedOnly {
		builder = builder.Where(sq.Eq{"pinned": true})
	}
	if filter.LoginOnly {
		builder = builder.Where(sq.Eq{"is_login_item": true})
	}

	return builder.OrderBy("modify_time DESC", "item_id").ToSql()
}

func buildSelectItemQuery(shareID, itemID string) (string, []any, error) {
	return psql.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"share_id": shareID, "item_id": itemID}).
		ToSql()
}

func buildUpsertItemsQuery(items []models.CachedItem) (string, []any, error) {
	builder := psql.Insert("items").Columns(itemColumns...)
	for _, it := range items {
		builder = builder.Values(
			it.ShareID, it.ItemID, it.Item.Revision, it.Item.ContentFormatVersion, it.Item.KeyRotation,
			it.Item.Content, it.Item.ItemKey, int(it.Item.State), it.Item.Pinned, it.Item.CreateTime,
			it.Item.ModifyTime, it.Item.LastUseTime, it.Item.RevisionTime, it.EncryptedContent, it.IsLoginItem,
		)
	}

	return builder.Suffix(onConflictUpdate([]string{"share_id", "item_id"}, itemColumns)).ToSql()
}

func buildDeleteItemsQuery(shareID string, itemIDs []string) (string, []any, error) {
	return psql.Delete("items").
		Where(sq.Eq{"share_id": shareID}).
		Where(sq.Eq{"item_id": itemIDs}).
		ToSql()
}

// chunk splits n elements into [start, end) windows of at most size.
func chunk(n, size int) [][2]int {
	windows := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		windows = append(windows, [2]int{start, end})
	}
	return windows
}
