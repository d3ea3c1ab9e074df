// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// secretGuard is the concrete implementation of [SecretGuard].
//
// The vault secret itself is never stored. A vault is an age key pair whose
// private half is sealed by a key derived from the secret (the KEK); the
// stored verifier is a one-way function of that KEK.
type secretGuard struct {
	secrets   store.VaultSecretRepository
	keyChain  crypto.VaultKeyChain
	sessions  *SessionRegistry
	validator validators.Validator
	notifier  Notifier

	policy lockoutPolicy
	kdf    models.KDFParams

	// setMu serializes SetSecret so two concurrent first calls cannot
	// create two different vault keys.
	setMu sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

// NewSecretGuard constructs a [SecretGuard]. It fails only when the
// lockout policy in cfg cannot be parsed.
func NewSecretGuard(
	secrets store.VaultSecretRepository,
	keyChain crypto.VaultKeyChain,
	sessions *SessionRegistry,
	notifier Notifier,
	cfg config.Vault,
	logger *logger.Logger,
) (SecretGuard, error) {
	tiers, err := cfg.LockoutTiers()
	if err != nil {
		return nil, err
	}

	return &secretGuard{
		secrets:   secrets,
		keyChain:  keyChain,
		sessions:  sessions,
		validator: validators.NewVaultValidator(cfg.MinSecretLength),
		notifier:  notifier,
		policy:    lockoutPolicy{tiers: tiers},
		kdf:       kdfParams(cfg),
		now:       time.Now,
		logger:    logger,
	}, nil
}

// SetSecret implements [SecretGuard].
//
// Rotation keeps the vault key pair, so every stored entry stays readable,
// resets the lockout counters and ends every disclosure session of the
// account.
func (g *secretGuard) SetSecret(ctx context.Context, userID int64, req models.SetSecretRequest, sessionToken string) (bool, error) {
	log := logger.FromContext(ctx)

	if err := g.validator.Validate(ctx, req); err != nil {
		return false, err
	}

	g.setMu.Lock()
	defer g.setMu.Unlock()

	existing, err := g.secrets.Get(ctx, userID)
	if errors.Is(err, store.ErrVaultSecretNotFound) {
		if err = g.create(ctx, userID, req.Secret); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		log.Err(err).Str("func", "secretGuard.SetSecret").Int64("user_id", userID).Msg("failed to load vault secret")
		return false, fmt.Errorf("load vault secret: %w", err)
	}

	identity, err := g.proveOwnership(ctx, existing, req.CurrentSecret, sessionToken)
	if err != nil {
		return false, err
	}
	defer crypto.Wipe(identity)

	if err = g.rotate(ctx, existing, req.Secret, identity); err != nil {
		return false, err
	}
	return false, nil
}

// VerifySecret implements [SecretGuard].
func (g *secretGuard) VerifySecret(ctx context.Context, userID int64, candidate string) (models.Verdict, error) {
	verdict, identity, err := g.OpenVault(ctx, userID, candidate)
	crypto.Wipe(identity)
	return verdict, err
}

// OpenVault implements [SecretGuard].
func (g *secretGuard) OpenVault(ctx context.Context, userID int64, candidate string) (models.Verdict, []byte, error) {
	secret, err := g.secrets.Get(ctx, userID)
	if errors.Is(err, store.ErrVaultSecretNotFound) {
		return models.Denied, nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "secretGuard.OpenVault").Int64("user_id", userID).Msg("failed to load vault secret")
		return models.Denied, nil, fmt.Errorf("load vault secret: %w", err)
	}

	return g.open(ctx, secret, candidate)
}

// Recipient implements [SecretGuard].
func (g *secretGuard) Recipient(ctx context.Context, userID int64) (string, error) {
	secret, err := g.secrets.Get(ctx, userID)
	if errors.Is(err, store.ErrVaultSecretNotFound) {
		return "", ErrVaultNotConfigured
	}
	if err != nil {
		return "", fmt.Errorf("load vault secret: %w", err)
	}
	return secret.Recipient, nil
}

// Lockout implements [SecretGuard]. An expired cooldown is reported as
// zero.
func (g *secretGuard) Lockout(ctx context.Context, userID int64) (bool, int, time.Time, error) {
	secret, err := g.secrets.Get(ctx, userID)
	if errors.Is(err, store.ErrVaultSecretNotFound) {
		return false, 0, time.Time{}, nil
	}
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("load vault secret: %w", err)
	}

	cooldown := secret.CooldownUntil
	if !g.now().Before(cooldown) {
		cooldown = time.Time{}
	}
	return true, secret.FailedAttempts, cooldown, nil
}

// open checks candidate against secret, updating the lockout counters.
// On Granted it returns the unwrapped vault identity.
func (g *secretGuard) open(ctx context.Context, secret models.VaultSecret, candidate string) (models.Verdict, []byte, error) {
	log := logger.FromContext(ctx)

	now := g.now()
	if now.Before(secret.CooldownUntil) {
		return models.Denied, nil, &CooldownError{Until: secret.CooldownUntil}
	}

	kek := g.keyChain.DeriveKEK(candidate, secret.Salt, secret.KDF)
	defer crypto.Wipe(kek)

	if !g.keyChain.VerifyKEK(kek, secret.Verifier) {
		return models.Denied, nil, g.recordFailure(ctx, secret, now)
	}

	identity, err := g.keyChain.UnwrapKey(secret.WrappedKey, kek)
	if err != nil {
		log.Err(err).Str("func", "secretGuard.open").Int64("user_id", secret.UserID).Msg("verifier matched but vault key could not be unwrapped")
		return models.Denied, nil, fmt.Errorf("unwrap vault key: %w", err)
	}

	if secret.FailedAttempts > 0 || !secret.CooldownUntil.IsZero() {
		if err = g.secrets.SaveAttempts(ctx, secret.UserID, 0, time.Time{}); err != nil {
			crypto.Wipe(identity)
			log.Err(err).Str("func", "secretGuard.open").Int64("user_id", secret.UserID).Msg("failed to reset failed attempts")
			return models.Denied, nil, fmt.Errorf("reset failed attempts: %w", err)
		}
	}

	return models.Granted, identity, nil
}

func (g *secretGuard) recordFailure(ctx context.Context, secret models.VaultSecret, now time.Time) error {
	failures := secret.FailedAttempts + 1

	var until time.Time
	if d := g.policy.cooldown(failures); d > 0 {
		until = now.Add(d)
	}

	if err := g.secrets.SaveAttempts(ctx, secret.UserID, failures, until); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "secretGuard.recordFailure").Int64("user_id", secret.UserID).Msg("failed to record failed attempt")
		return fmt.Errorf("record failed attempt: %w", err)
	}

	g.notifier.Notify(ctx, models.AuditEvent{
		Kind:   models.EventUnlockDenied,
		UserID: secret.UserID,
		Detail: fmt.Sprintf("failed_attempts=%d", failures),
	})
	if !until.IsZero() {
		g.notifier.Notify(ctx, models.AuditEvent{
			Kind:   models.EventLockout,
			UserID: secret.UserID,
			Detail: "cooldown_until=" + until.UTC().Format(time.RFC3339),
		})
	}
	return nil
}

// proveOwnership returns the vault identity, obtained either from the
// current secret or from a live session.
func (g *secretGuard) proveOwnership(ctx context.Context, secret models.VaultSecret, currentSecret, sessionToken string) ([]byte, error) {
	switch {
	case currentSecret != "":
		verdict, identity, err := g.open(ctx, secret, currentSecret)
		if err != nil {
			return nil, err
		}
		if verdict != models.Granted {
			return nil, ErrWrongVaultSecret
		}
		return identity, nil
	case sessionToken != "":
		_, identity, err := g.sessions.Lookup(secret.UserID, sessionToken)
		if err != nil {
			return nil, err
		}
		return identity, nil
	default:
		return nil, ErrProofRequired
	}
}

func (g *secretGuard) create(ctx context.Context, userID int64, newSecret string) error {
	log := logger.FromContext(ctx)

	identity, recipient, err := g.keyChain.GenerateVaultKey()
	if err != nil {
		return fmt.Errorf("generate vault key: %w", err)
	}
	defer crypto.Wipe(identity)

	now := g.now()
	record, err := g.seal(userID, newSecret, identity)
	if err != nil {
		return err
	}
	record.Recipient = recipient
	record.CreatedAt = now
	record.UpdatedAt = now

	if err = g.secrets.Save(ctx, record); err != nil {
		log.Err(err).Str("func", "secretGuard.create").Int64("user_id", userID).Msg("failed to save vault secret")
		return fmt.Errorf("save vault secret: %w", err)
	}

	g.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventSecretSet, UserID: userID})
	return nil
}

func (g *secretGuard) rotate(ctx context.Context, existing models.VaultSecret, newSecret string, identity []byte) error {
	log := logger.FromContext(ctx)

	record, err := g.seal(existing.UserID, newSecret, identity)
	if err != nil {
		return err
	}
	record.Recipient = existing.Recipient
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = g.now()

	if err = g.secrets.Save(ctx, record); err != nil {
		log.Err(err).Str("func", "secretGuard.rotate").Int64("user_id", existing.UserID).Msg("failed to save rotated vault secret")
		return fmt.Errorf("save vault secret: %w", err)
	}

	revoked := g.sessions.RevokeAll(existing.UserID)
	g.notifier.Notify(ctx, models.AuditEvent{
		Kind:   models.EventSecretRotated,
		UserID: existing.UserID,
		Detail: fmt.Sprintf("sessions_revoked=%d", revoked),
	})
	return nil
}

// seal derives a fresh KEK for newSecret and wraps identity with it. The
// returned record has zeroed lockout counters.
func (g *secretGuard) seal(userID int64, newSecret string, identity []byte) (models.VaultSecret, error) {
	salt, err := g.keyChain.GenerateSalt()
	if err != nil {
		return models.VaultSecret{}, fmt.Errorf("generate salt: %w", err)
	}

	kek := g.keyChain.DeriveKEK(newSecret, salt, g.kdf)
	defer crypto.Wipe(kek)

	wrapped, err := g.keyChain.WrapKey(identity, kek)
	if err != nil {
		return models.VaultSecret{}, fmt.Errorf("wrap vault key: %w", err)
	}

	return models.VaultSecret{
		UserID:     userID,
		Salt:       salt,
		Verifier:   g.keyChain.Verifier(kek),
		WrappedKey: wrapped,
		KDF:        g.kdf,
	}, nil
}

// kdfParams takes the Argon2id parameters for new secrets from cfg, falling
// back to the defaults for unset values. They are stored with each secret.
func kdfParams(cfg config.Vault) models.KDFParams {
	params := crypto.DefaultKDFParams
	if cfg.KDFTime > 0 {
		params.Time = cfg.KDFTime
	}
	if cfg.KDFMemoryKiB > 0 {
		params.MemoryKiB = cfg.KDFMemoryKiB
	}
	if cfg.KDFThreads > 0 {
		params.Threads = cfg.KDFThreads
	}
	return params
}
