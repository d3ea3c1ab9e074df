package service

import (
	"context"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecretGuard owns the per-account vault secret. It is the single place a
// vault secret candidate is checked.
type SecretGuard interface {
	// SetSecret creates the vault on first use, or rotates its secret. A
	// rotation needs req.CurrentSecret or a live sessionToken of the account.
	// created is true when the vault did not exist before.
	SetSecret(ctx context.Context, userID int64, req models.SetSecretRequest, sessionToken string) (created bool, err error)

	// VerifySecret checks candidate. A wrong secret and a missing vault are
	// both Denied with a nil error. An active lockout is a [*CooldownError].
	VerifySecret(ctx context.Context, userID int64, candidate string) (models.Verdict, error)

	// OpenVault is VerifySecret that also hands the unwrapped vault identity
	// to the caller on Granted. The caller must wipe it.
	OpenVault(ctx context.Context, userID int64, candidate string) (models.Verdict, []byte, error)

	// Recipient returns the public vault key or [ErrVaultNotConfigured].
	Recipient(ctx context.Context, userID int64) (string, error)

	// Lockout reports whether a vault exists and its lockout counters.
	Lockout(ctx context.Context, userID int64) (configured bool, failedAttempts int, cooldownUntil time.Time, err error)
}

// EntryService manages vault entries. Every view it returns is masked unless
// a live session of the account is supplied and the caller submitted the
// secret in the same call.
type EntryService interface {
	Add(ctx context.Context, userID int64, input models.EntryInput, sessionToken string) (models.EntryView, error)
	List(ctx context.Context, userID int64) ([]models.EntryView, error)
	Get(ctx context.Context, userID int64, id string) (models.EntryView, error)
	Update(ctx context.Context, userID int64, id string, patch models.EntryPatch, sessionToken string) (models.EntryView, error)
	Remove(ctx context.Context, userID int64, id string) (bool, error)
}

// DisclosureService is the only way plaintext entry secrets leave the
// server.
type DisclosureService interface {
	Unlock(ctx context.Context, userID int64, secret string) (models.DisclosureSession, error)
	Lock(ctx context.Context, userID int64, token string) error
	LockAll(ctx context.Context, userID int64) error

	// Reveal re-authenticates with the vault secret and decrypts one entry.
	Reveal(ctx context.Context, userID int64, entryID, secret string) (models.Disclosure, error)

	// RevealWithSession decrypts one entry using an unlocked session.
	RevealWithSession(ctx context.Context, userID int64, entryID, token string) (models.Disclosure, error)

	Status(ctx context.Context, userID int64, token string) (models.VaultStatus, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Notifier receives audit events. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, event models.AuditEvent)
}
