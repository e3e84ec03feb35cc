// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemState is the lifecycle state of an item revision.
type ItemState int

const (
	// ItemStateActive is a regular, visible item.
	ItemStateActive ItemState = 1

	// ItemStateTrashed is an item moved to the trash; it can be restored or
	// permanently deleted.
	ItemStateTrashed ItemState = 2
)

// ItemRevision is the remote, authoritative representation of one item.
// Content is opaque to everyone but the holders of the share key.
type ItemRevision struct {
	// ItemID is the identifier of the item inside its share.
	ItemID string `json:"item_id"`

	// Revision is increased by the server on every content or state change.
	Revision int64 `json:"revision"`

	// ContentFormatVersion is the version of the ItemContent layout.
	ContentFormatVersion int `json:"content_format_version"`

	// KeyRotation names the share key rotation the item is encrypted under.
	KeyRotation int64 `json:"key_rotation"`

	// Content is the base64 AES-GCM ciphertext of the JSON ItemContent.
	Content string `json:"content"`

	// ItemKey is the base64 item key sealed under the share key. When empty
	// the content is sealed directly under the share key.
	ItemKey *string `json:"item_key,omitempty"`

	// State is the active/trashed state.
	State ItemState `json:"state"`

	// Pinned marks items shown in the pinned list.
	Pinned bool `json:"pinned"`

	CreateTime   int64 `json:"create_time"`
	ModifyTime   int64 `json:"modify_time"`
	LastUseTime  int64 `json:"last_use_time"`
	RevisionTime int64 `json:"revision_time"`
}

// CachedItem is the local cache entry of an item revision. EncryptedContent
// holds the decrypted ItemContent sealed again under the device key so the
// local store never sees vault key ciphertext or plaintext.
type CachedItem struct {
	ShareID string `json:"share_id"`
	ItemID  string `json:"item_id"`

	// Item is the raw remote revision the entry was built from.
	Item ItemRevision `json:"item"`

	// EncryptedContent is the device-key ciphertext of the ItemContent JSON.
	EncryptedContent string `json:"encrypted_content"`

	// IsLoginItem is derived from the content type once, at encryption time,
	// so that filtering does not require decryption.
	IsLoginItem bool `json:"is_login_item"`
}

// Identifier returns the (share, item) pair addressing the entry.
func (c CachedItem) Identifier() ItemIdentifier {
	return ItemIdentifier{ShareID: c.ShareID, ItemID: c.ItemID}
}

// ItemIdentifier addresses a single item across shares.
type ItemIdentifier struct {
	ShareID string `json:"share_id"`
	ItemID  string `json:"item_id"`
}

// ItemFilter narrows local item queries. Zero values mean "no filter".
type ItemFilter struct {
	ShareID    string
	State      ItemState
	PinnedOnly bool
	LoginOnly  bool
}

// ItemStateChange is the server answer to trash, untrash and pin requests:
// the new revision metadata of one item.
type ItemStateChange struct {
	ItemID     string    `json:"item_id"`
	Revision   int64     `json:"revision"`
	State      ItemState `json:"state"`
	Pinned     bool      `json:"pinned"`
	ModifyTime int64     `json:"modify_time"`
}

// LastUseItem records the last time an item was used for autofill.
type LastUseItem struct {
	ItemID      string `json:"item_id"`
	LastUseTime int64  `json:"last_use_time"`
}
