// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ShareRole is the permission level the current user holds on a share.
type ShareRole string

const (
	ShareRoleAdmin ShareRole = "admin"
	ShareRoleWrite ShareRole = "write"
	ShareRoleRead  ShareRole = "read"
)

// Share is a vault: the unit of access control and key rotation.
// The remote copy is authoritative; the local row is a cached projection that
// is deleted as soon as the share disappears from the remote list.
type Share struct {
	// ShareID is the unique identifier of the share.
	ShareID string `json:"share_id"`

	// VaultID identifies the vault the share grants access to.
	VaultID string `json:"vault_id"`

	// AddressID is the user address the share keys are sealed to.
	AddressID string `json:"address_id"`

	// TargetType distinguishes vault shares from single item shares.
	TargetType int `json:"target_type"`

	// Owner is true when the current user created the vault.
	Owner bool `json:"owner"`

	// Shared is true when more than one user has access to the vault.
	Shared bool `json:"shared"`

	// Role is the permission level the current user holds on the share.
	Role ShareRole `json:"role"`

	// Primary marks the default vault for new items.
	Primary bool `json:"primary"`

	// Members is the number of users the share is visible to.
	Members int `json:"members"`

	// CurrentKeyRotation is the newest key rotation of the share.
	CurrentKeyRotation int64 `json:"current_key_rotation"`

	// CreateTime is the unix time the share was created.
	CreateTime int64 `json:"create_time"`
}

// CanWrite reports whether items of the share may be created or modified.
func (s Share) CanWrite() bool {
	return s.Role == ShareRoleAdmin || s.Role == ShareRoleWrite
}
