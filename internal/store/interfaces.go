package store

import (
	"context"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultEntryRepository persists vault entries. Every method is scoped to one
// account; an entry owned by another account behaves as missing.
type VaultEntryRepository interface {
	// Create stores a fully populated entry (id and timestamps assigned by
	// the caller).
	Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)

	// Get returns one entry or [ErrEntryNotFound].
	Get(ctx context.Context, userID int64, id string) (models.VaultEntry, error)

	// List returns every entry of the account ordered by creation time, then
	// id.
	List(ctx context.Context, userID int64) ([]models.VaultEntry, error)

	// Update applies the non-nil fields of update and returns the stored
	// entry, or [ErrEntryNotFound].
	Update(ctx context.Context, update models.VaultEntryUpdate) (models.VaultEntry, error)

	// Delete removes an entry and reports whether anything was removed.
	Delete(ctx context.Context, userID int64, id string) (bool, error)
}

// VaultSecretRepository persists the per-account vault secret record.
type VaultSecretRepository interface {
	// Get returns the record or [ErrVaultSecretNotFound].
	Get(ctx context.Context, userID int64) (models.VaultSecret, error)

	// Save inserts or fully replaces the record. CreatedAt of an existing
	// record is kept.
	Save(ctx context.Context, secret models.VaultSecret) error

	// SaveAttempts stores the lockout counters only. A zero cooldownUntil
	// clears the cooldown.
	SaveAttempts(ctx context.Context, userID int64, failedAttempts int, cooldownUntil time.Time) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
