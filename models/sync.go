// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncEventBatch is the incremental delta of one share since a given event id.
type SyncEventBatch struct {
	// LatestEventID is the id to acknowledge and to pull from next time.
	LatestEventID string `json:"latest_event_id"`

	// EventsPending is true when the server holds more events after
	// LatestEventID; the client must pull again.
	EventsPending bool `json:"events_pending"`

	// FullRefresh signals that incremental application is not possible and the
	// whole item set of the share must be pulled again.
	FullRefresh bool `json:"full_refresh"`

	// UpdatedShare is the new share metadata, if it changed.
	UpdatedShare *Share `json:"updated_share,omitempty"`

	UpdatedItems   []ItemRevision `json:"updated_items,omitempty"`
	DeletedItemIDs []string       `json:"deleted_item_ids,omitempty"`
	LastUseItems   []LastUseItem  `json:"last_use_items,omitempty"`

	// NewKeyRotation is set when the share keys were rotated and must be
	// fetched again.
	NewKeyRotation *int64 `json:"new_key_rotation,omitempty"`
}

// HasIncrementalChanges reports whether any incremental category is non-empty.
func (b SyncEventBatch) HasIncrementalChanges() bool {
	return b.UpdatedShare != nil ||
		len(b.UpdatedItems) > 0 ||
		len(b.DeletedItemIDs) > 0 ||
		len(b.LastUseItems) > 0 ||
		b.NewKeyRotation != nil
}

// LastEventIDResponse is the server answer to a "latest event id" request.
type LastEventIDResponse struct {
	EventID string `json:"event_id"`
}
