// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateItemRequest creates a new item in a share. Content is sealed under
// the new item key; ItemKey is the item key sealed under the share key at
// KeyRotation.
type CreateItemRequest struct {
	KeyRotation          int64  `json:"key_rotation"`
	ContentFormatVersion int    `json:"content_format_version"`
	Content              string `json:"content"`
	ItemKey              string `json:"item_key"`
}

// UpdateItemRequest replaces the content of an existing item. LastRevision is
// the revision the change was based on; the server rejects stale updates.
type UpdateItemRequest struct {
	KeyRotation          int64  `json:"key_rotation"`
	LastRevision         int64  `json:"last_revision"`
	ContentFormatVersion int    `json:"content_format_version"`
	Content              string `json:"content"`
}

// ItemRevisionRef names one item at the revision the client last saw.
type ItemRevisionRef struct {
	ItemID   string `json:"item_id"`
	Revision int64  `json:"revision"`
}

// ItemBatchRequest is the body of trash, untrash and delete requests. All
// items belong to the same share.
type ItemBatchRequest struct {
	Items []ItemRevisionRef `json:"items"`
}

// MoveItemPayload carries one item re-keyed for the destination share.
type MoveItemPayload struct {
	ItemID               string `json:"item_id"`
	ContentFormatVersion int    `json:"content_format_version"`
	Content              string `json:"content"`
	ItemKey              string `json:"item_key"`
}

// MoveItemsRequest moves items from one share to DestinationShareID.
type MoveItemsRequest struct {
	DestinationShareID string            `json:"share_id"`
	KeyRotation        int64             `json:"key_rotation"`
	Items              []MoveItemPayload `json:"items"`
}

// ItemsPage is one page of a remote item listing.
type ItemsPage struct {
	Items     []ItemRevision `json:"items"`
	Total     int            `json:"total"`
	LastToken string         `json:"last_token,omitempty"`
}

// SharesResponse is the remote share listing.
type SharesResponse struct {
	Shares []Share `json:"shares"`
}

// ShareKeysPage is one page of encrypted share keys.
type ShareKeysPage struct {
	Keys  []ShareKey `json:"keys"`
	Total int        `json:"total"`
}

// ItemStateChangesResponse wraps the items changed by a batch request.
type ItemStateChangesResponse struct {
	Items []ItemStateChange `json:"items"`
}

// ItemRevisionsResponse wraps revisions returned by create/update/move.
type ItemRevisionsResponse struct {
	Items []ItemRevision `json:"items"`
}

// ItemResponse wraps a single item revision returned by create and update.
type ItemResponse struct {
	Item ItemRevision `json:"item"`
}

// ItemStateChangeResponse wraps the result of a pin or unpin request.
type ItemStateChangeResponse struct {
	Item ItemStateChange `json:"item"`
}

// ErrorResponse is the JSON error body returned by the server.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
