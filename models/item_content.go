// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemType is the content variant discriminant of ItemContent.Data.
type ItemType int

const (
	ItemTypeNote  ItemType = 1
	ItemTypeLogin ItemType = 2
	ItemTypeCard  ItemType = 3
	ItemTypeAlias ItemType = 4
)

// ItemContent is the decrypted, structured payload of an item. It is
// serialized to JSON before being sealed under a vault key or the device key.
type ItemContent struct {
	// Name is the human-readable display name of the item.
	Name string `json:"name"`

	// Note is a free-form note attached to any item type.
	Note string `json:"note"`

	// ItemUUID is a client-generated stable identifier of the content.
	ItemUUID string `json:"item_uuid"`

	// Data is the type-specific part of the content.
	Data ItemData `json:"data"`

	// ExtraFields are user-defined fields.
	ExtraFields []ExtraField `json:"extra_fields,omitempty"`
}

// ItemData holds exactly one variant, selected by Type.
type ItemData struct {
	Type  ItemType   `json:"type"`
	Login *LoginData `json:"login,omitempty"`
	Card  *CardData  `json:"card,omitempty"`
	Alias *AliasData `json:"alias,omitempty"`
}

// IsLogin reports whether the content is a login.
func (c ItemContent) IsLogin() bool {
	return c.Data.Type == ItemTypeLogin
}

// LoginData represents login credentials.
type LoginData struct {
	// Username is the login identifier used for authentication.
	Username string `json:"username"`

	// Password is the secret credential associated with the username.
	Password string `json:"password"`

	// URLs lists the websites the credentials apply to.
	URLs []string `json:"urls,omitempty"`

	// TOTPURI is an optional otpauth:// seed.
	TOTPURI string `json:"totp_uri,omitempty"`
}

// CardData represents payment card information.
type CardData struct {
	CardholderName string `json:"cardholder_name"`
	Number         string `json:"number"`
	ExpirationDate string `json:"expiration_date"`
	VerificationNo string `json:"verification_number"`
	PIN            string `json:"pin,omitempty"`
}

// AliasData describes an email alias item.
type AliasData struct {
	Email string `json:"email"`
}

// ExtraField is a user-defined, typed field.
type ExtraField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}
