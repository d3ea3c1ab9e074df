package service

import (
	"context"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// ClientVaultCache is the terminal client's in-memory view of the vault.
// Mutations are applied optimistically and reconciled with the server's
// answer; a failed call restores the entry exactly as it was.
type ClientVaultCache interface {
	// Refresh replaces the cache with the server list. Every value is masked
	// afterwards, including ones revealed earlier.
	Refresh(ctx context.Context) error

	// Entries returns a copy of the current view state.
	Entries() []models.CachedEntry

	// Toggle flips the visibility of one entry. The first toggle to visible
	// of a masked entry asks the server to reveal it with the current
	// session; on failure the entry stays masked and hidden. Hiding never
	// contacts the server and keeps the revealed value.
	Toggle(ctx context.Context, id string) (models.CachedEntry, error)

	// CachedSecret returns the revealed value held for id, if any.
	CachedSecret(id string) (string, bool)

	Add(ctx context.Context, input models.EntryInput) (models.CachedEntry, error)
	Update(ctx context.Context, id string, patch models.EntryPatch) (models.CachedEntry, error)
	Delete(ctx context.Context, id string) (bool, error)

	// Lock ends the server session and re-masks every cached value.
	Lock(ctx context.Context) error
}

// ClientVaultAccessService covers the vault secret and session calls of the
// terminal client.
type ClientVaultAccessService interface {
	Status(ctx context.Context) (models.VaultStatus, error)
	Unlock(ctx context.Context, secret string) (models.DisclosureSession, error)

	// SetSecret creates the vault or rotates its secret. A rotation ends
	// every server session, so the cache is re-masked.
	SetSecret(ctx context.Context, secret, currentSecret string) (created bool, err error)

	VerifyPin(ctx context.Context, secret string) (bool, error)
	ServerVersion(ctx context.Context) (string, error)
}
