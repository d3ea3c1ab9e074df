package models

// Audit event kinds emitted by the vault services.
const (
	EventSecretSet      = "vault.secret_set"
	EventSecretRotated  = "vault.secret_rotated"
	EventUnlocked       = "vault.unlocked"
	EventUnlockDenied   = "vault.unlock_denied"
	EventLockout        = "vault.lockout"
	EventLocked         = "vault.locked"
	EventEntryRevealed  = "vault.entry_revealed"
	EventEntryAdded     = "vault.entry_added"
	EventEntryUpdated   = "vault.entry_updated"
	EventEntryDeleted   = "vault.entry_deleted"
	EventSessionExpired = "vault.session_expired"
)

// AuditEvent is a security relevant fact about one account's vault. It
// never carries a secret.
type AuditEvent struct {
	Kind    string
	UserID  int64
	EntryID string
	Detail  string
}
