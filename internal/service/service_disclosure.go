// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// disclosureService is the concrete implementation of [DisclosureService].
//
// Vault states per session: Locked → Unlocked on a Granted unlock, back to
// Locked on lock, expiry or secret rotation. An unlocked session holds the
// vault identity only; plaintext secrets live for one response.
type disclosureService struct {
	guard    SecretGuard
	entries  store.VaultEntryRepository
	keyChain crypto.VaultKeyChain
	sessions *SessionRegistry
	notifier Notifier

	logger *logger.Logger
}

// NewDisclosureService constructs a [DisclosureService].
func NewDisclosureService(
	guard SecretGuard,
	entries store.VaultEntryRepository,
	keyChain crypto.VaultKeyChain,
	sessions *SessionRegistry,
	notifier Notifier,
	logger *logger.Logger,
) DisclosureService {
	return &disclosureService{
		guard:    guard,
		entries:  entries,
		keyChain: keyChain,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
	}
}

// Unlock implements [DisclosureService]. Every unlock issues a new session;
// earlier sessions stay valid until they expire or are locked.
func (d *disclosureService) Unlock(ctx context.Context, userID int64, secret string) (models.DisclosureSession, error) {
	verdict, identity, err := d.guard.OpenVault(ctx, userID, secret)
	if err != nil {
		return models.DisclosureSession{}, err
	}
	if verdict != models.Granted {
		return models.DisclosureSession{}, ErrWrongVaultSecret
	}
	defer crypto.Wipe(identity)

	session, err := d.sessions.Grant(userID, identity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "disclosureService.Unlock").Int64("user_id", userID).Msg("failed to grant session")
		return models.DisclosureSession{}, err
	}

	d.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventUnlocked, UserID: userID})
	return session, nil
}

// Lock implements [DisclosureService]. Unknown tokens are ignored.
func (d *disclosureService) Lock(ctx context.Context, userID int64, token string) error {
	if d.sessions.Revoke(userID, token) {
		d.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventLocked, UserID: userID})
	}
	return nil
}

// LockAll implements [DisclosureService].
func (d *disclosureService) LockAll(ctx context.Context, userID int64) error {
	if n := d.sessions.RevokeAll(userID); n > 0 {
		d.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventLocked, UserID: userID, Detail: fmt.Sprintf("sessions=%d", n)})
	}
	return nil
}

// Reveal implements [DisclosureService]. The secret is checked before the
// entry is looked up, so a wrong secret never tells whether an id exists.
func (d *disclosureService) Reveal(ctx context.Context, userID int64, entryID, secret string) (models.Disclosure, error) {
	verdict, identity, err := d.guard.OpenVault(ctx, userID, secret)
	if err != nil {
		return models.Disclosure{}, err
	}
	if verdict != models.Granted {
		return models.Disclosure{}, ErrWrongVaultSecret
	}
	defer crypto.Wipe(identity)

	return d.disclose(ctx, userID, entryID, identity)
}

// RevealWithSession implements [DisclosureService].
func (d *disclosureService) RevealWithSession(ctx context.Context, userID int64, entryID, token string) (models.Disclosure, error) {
	if token == "" {
		return models.Disclosure{}, ErrVaultLocked
	}

	_, identity, err := d.sessions.Lookup(userID, token)
	if err != nil {
		return models.Disclosure{}, err
	}
	defer crypto.Wipe(identity)

	disclosure, err := d.disclose(ctx, userID, entryID, identity)
	if err != nil {
		return models.Disclosure{}, err
	}

	d.sessions.MarkDisclosed(token, entryID)
	return disclosure, nil
}

// Status implements [DisclosureService]. Without a token the latest live
// session of the account decides Unlocked.
func (d *disclosureService) Status(ctx context.Context, userID int64, token string) (models.VaultStatus, error) {
	configured, failedAttempts, cooldownUntil, err := d.guard.Lockout(ctx, userID)
	if err != nil {
		return models.VaultStatus{}, err
	}

	status := models.VaultStatus{Configured: configured, FailedAttempts: failedAttempts}
	if !cooldownUntil.IsZero() {
		status.CooldownUntil = &cooldownUntil
	}

	var (
		session   models.DisclosureSession
		disclosed int
		ok        bool
	)
	if token != "" {
		session, disclosed, err = d.sessions.Session(userID, token)
		ok = err == nil
	} else if session, ok = d.sessions.Latest(userID); ok {
		disclosed = d.sessions.Disclosed(session.Token)
	}
	if ok {
		expiresAt := session.ExpiresAt
		status.Unlocked = true
		status.ExpiresAt = &expiresAt
		status.Disclosed = disclosed
	}

	return status, nil
}

func (d *disclosureService) disclose(ctx context.Context, userID int64, entryID string, identity []byte) (models.Disclosure, error) {
	entry, err := d.entries.Get(ctx, userID, entryID)
	if err != nil {
		return models.Disclosure{}, fmt.Errorf("get entry: %w", err)
	}

	secret, err := d.keyChain.OpenSecret(entry.ID, entry.CipheredSecret, identity)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "disclosureService.disclose").
			Int64("user_id", userID).
			Str("entry_id", entryID).
			Msg("failed to open entry secret")
		return models.Disclosure{}, fmt.Errorf("open entry secret: %w", err)
	}

	d.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventEntryRevealed, UserID: userID, EntryID: entryID})
	return models.NewDisclosure(entry, secret), nil
}
