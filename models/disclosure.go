// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultSessionHeader carries the disclosure session token on HTTP requests.
const VaultSessionHeader = "X-Vault-Session"

// DisclosureSession is the ephemeral grant issued on a successful unlock.
// It is passed explicitly by token into every call that relies on it.
type DisclosureSession struct {
	Token     string    `json:"session_token"`
	UserID    int64     `json:"-"`
	GrantedAt time.Time `json:"granted_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s DisclosureSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// VaultStatus describes a vault without revealing anything about its
// contents.
type VaultStatus struct {
	Configured     bool       `json:"configured"`
	Unlocked       bool       `json:"unlocked"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CooldownUntil  *time.Time `json:"cooldown_until,omitempty"`
	FailedAttempts int        `json:"failed_attempts"`

	// Disclosed counts the distinct entries revealed in the current session.
	Disclosed int `json:"disclosed,omitempty"`
}

// CachedEntry is the client-side view state of one entry.
type CachedEntry struct {
	EntryView

	// Visible is true while the user has the secret toggled on.
	Visible bool

	// Pending marks an optimistic record whose server call is in flight.
	Pending bool

	// CorrelationID ties a temporary record to the add call that created it.
	CorrelationID string
}

// Disclosure is the response of a reveal: one entry with its secret in the
// Revealed variant.
type Disclosure struct {
	EntryID     string      `json:"entry_id"`
	Domain      string      `json:"domain"`
	AccountName string      `json:"account_name"`
	Secret      SecretValue `json:"pin_or_password"`
	URL         string      `json:"url,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// NewDisclosure builds the disclosure of e carrying the decrypted secret.
func NewDisclosure(e VaultEntry, secret string) Disclosure {
	return Disclosure{
		EntryID:     e.ID,
		Domain:      e.Domain,
		AccountName: e.AccountName,
		Secret:      RevealedSecret(secret),
		URL:         e.URL,
		Notes:       e.Notes,
	}
}
