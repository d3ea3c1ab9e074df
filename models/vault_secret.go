// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// KDFParams are the Argon2id parameters a vault secret was derived with.
// They are persisted next to the secret so that changing the server defaults
// never locks out an existing vault.
type KDFParams struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memory_kib"`
	Threads   uint8  `json:"threads"`
	KeyLen    uint32 `json:"key_len"`
}

// VaultSecret is the per-account record guarding the vault. It never holds
// the raw secret: only the salt, a one-way verifier and the vault private
// key sealed by the key derived from the secret.
type VaultSecret struct {
	UserID int64

	// Salt is the random Argon2id salt.
	Salt []byte

	// Verifier is SHA-256(KEK || label); compared in constant time.
	Verifier []byte

	// Recipient is the public half of the vault key pair. Entry secrets are
	// encrypted to it without needing the vault secret.
	Recipient string

	// WrappedKey is the vault private key sealed with AES-256-GCM under the
	// KEK (nonce || ciphertext).
	WrappedKey []byte

	KDF KDFParams

	// FailedAttempts counts consecutive wrong secrets.
	FailedAttempts int

	// CooldownUntil is zero when no cooldown is active.
	CooldownUntil time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Verdict is the outcome of a vault secret verification.
type Verdict int

const (
	Denied Verdict = iota
	Granted
)

func (v Verdict) String() string {
	if v == Granted {
		return "granted"
	}
	return "denied"
}

// SetSecretRequest sets or rotates the vault secret. Rotation needs either
// CurrentSecret or an unlocked session.
type SetSecretRequest struct {
	Secret        string `json:"vault_password"`
	CurrentSecret string `json:"current_vault_password,omitempty"`
}

// UnlockRequest carries a vault secret candidate.
type UnlockRequest struct {
	Secret string `json:"vault_password"`
}

// ViewRequest asks for one entry's disclosure with the vault secret.
type ViewRequest struct {
	EntryID string `json:"entry_id"`
	Secret  string `json:"vault_password"`
}

// VerifyResponse answers a verify-pin call.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// SetSecretResponse acknowledges a set or rotate call.
type SetSecretResponse struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}
