package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New(app.MsgVersionIsNotSpecified)
	ErrNoUserID                = errors.New(app.MsgNoUserIDProvided)
)

// Authorization failures of the vault. They all map to 401.
var (
	ErrWrongVaultSecret = errors.New(app.MsgWrongVaultPassword)
	ErrVaultLocked      = errors.New(app.MsgVaultLocked)
	ErrSessionExpired   = errors.New(app.MsgSessionExpired)
	ErrProofRequired    = errors.New(app.MsgProofRequired)
)

var (
	// ErrVaultNotConfigured is returned when an operation needs a vault
	// secret the account has not set yet.
	ErrVaultNotConfigured = errors.New(app.MsgVaultNotConfigured)

	// ErrTooManyAttempts is matched by every [CooldownError].
	ErrTooManyAttempts = errors.New(app.MsgTooManyAttempts)
)

// CooldownError reports an active lockout. errors.Is(err,
// ErrTooManyAttempts) holds for it.
type CooldownError struct {
	Until time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrTooManyAttempts, e.Until.UTC().Format(time.RFC3339))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrTooManyAttempts
}

// RetryAfter returns the remaining cooldown at now, rounded up to whole
// seconds and never below one.
func (e *CooldownError) RetryAfter(now time.Time) time.Duration {
	d := e.Until.Sub(now)
	if d < time.Second {
		return time.Second
	}
	return (d + time.Second - 1).Truncate(time.Second)
}

// ErrEntryPending is returned by the client cache for an entry whose
// previous change has not been answered by the server yet.
var ErrEntryPending = errors.New("entry has a change in flight")
