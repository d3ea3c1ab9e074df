// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// VaultEntry is one stored credential record as the persistence layer sees
// it. The secret is only ever held in its ciphered form.
type VaultEntry struct {
	// ID is the server-assigned, immutable identifier (UUIDv7).
	ID string `json:"id"`

	// UserID is the owning account. Never serialized.
	UserID int64 `json:"-"`

	// Domain is the display label of the site or service.
	Domain string `json:"domain"`

	// AccountName is the login used on that site.
	AccountName string `json:"account_name"`

	// CipheredSecret is the base64 armored ciphertext of the secret value,
	// sealed to the owning vault's recipient key. Never serialized.
	CipheredSecret string `json:"-"`

	// URL is the normalized link (always carries an http(s) scheme when set).
	URL string `json:"url,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VaultEntryUpdate is a partial update at the persistence layer. Nil fields
// are left untouched.
type VaultEntryUpdate struct {
	ID     string
	UserID int64

	Domain         *string
	AccountName    *string
	CipheredSecret *string
	URL            *string
	Notes          *string

	UpdatedAt time.Time
}

// EntryInput is the payload of an "add" call.
type EntryInput struct {
	Domain      string `json:"domain"`
	AccountName string `json:"account_name"`
	Secret      string `json:"pin_or_password"`
	URL         string `json:"url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UnmarshalJSON accepts "secret_value" as an alias of "pin_or_password".
func (e *EntryInput) UnmarshalJSON(b []byte) error {
	type plain EntryInput
	var aux struct {
		plain
		SecretValue *string `json:"secret_value"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*e = EntryInput(aux.plain)
	if e.Secret == "" && aux.SecretValue != nil {
		e.Secret = *aux.SecretValue
	}
	return nil
}

// EntryPatch is the payload of an "update" call. Only non-nil fields are
// applied; an omitted Secret keeps the stored value.
type EntryPatch struct {
	Domain      *string `json:"domain,omitempty"`
	AccountName *string `json:"account_name,omitempty"`
	Secret      *string `json:"pin_or_password,omitempty"`
	URL         *string `json:"url,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// UnmarshalJSON accepts "secret_value" as an alias of "pin_or_password".
func (p *EntryPatch) UnmarshalJSON(b []byte) error {
	type plain EntryPatch
	var aux struct {
		plain
		SecretValue *string `json:"secret_value"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*p = EntryPatch(aux.plain)
	if p.Secret == nil && aux.SecretValue != nil {
		p.Secret = aux.SecretValue
	}
	return nil
}

// IsEmpty reports whether the patch carries no field at all.
func (p EntryPatch) IsEmpty() bool {
	return p.Domain == nil && p.AccountName == nil && p.Secret == nil && p.URL == nil && p.Notes == nil
}

// EntryView is the outward representation of an entry. Its secret is a
// [SecretValue], Masked unless the view came out of a disclosure.
type EntryView struct {
	ID          string      `json:"id"`
	Domain      string      `json:"domain"`
	AccountName string      `json:"account_name"`
	Secret      SecretValue `json:"pin_or_password"`
	URL         string      `json:"url,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// MaskedView builds the view of e with its secret masked. This is the only
// constructor used for list responses.
func MaskedView(e VaultEntry) EntryView {
	return EntryView{
		ID:          e.ID,
		Domain:      e.Domain,
		AccountName: e.AccountName,
		Secret:      MaskedSecret(),
		URL:         e.URL,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// DeleteResponse reports whether a delete call removed anything.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
