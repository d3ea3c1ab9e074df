package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// vaultSecretRepository is the SQL implementation of
// [VaultSecretRepository] over the "vault_secrets" table.
type vaultSecretRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultSecretRepository constructs a [VaultSecretRepository] backed by db.
func NewVaultSecretRepository(db *DB, logger *logger.Logger) VaultSecretRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating vault secret repository")
	return &vaultSecretRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the record or [ErrVaultSecretNotFound].
func (r *vaultSecretRepository) Get(ctx context.Context, userID int64) (models.VaultSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSecretQuery(r.db.builder, userID)
	if err != nil {
		return models.VaultSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	secret, err := scanSecret(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultSecret{}, ErrVaultSecretNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultSecretRepository.Get").
			Int64("user_id", userID).
			Msg("failed to select vault secret")
		return models.VaultSecret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// Save upserts the record.
func (r *vaultSecretRepository) Save(ctx context.Context, secret models.VaultSecret) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSecretQuery(r.db.builder, secret)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultSecretRepository.Save").
			Int64("user_id", secret.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to save vault secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveAttempts updates the lockout counters. Saving attempts for an account
// without a vault secret is [ErrVaultSecretNotFound].
func (r *vaultSecretRepository) SaveAttempts(ctx context.Context, userID int64, failedAttempts int, cooldownUntil time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAttemptsQuery(r.db.builder, userID, failedAttempts, cooldownUntil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultSecretRepository.SaveAttempts").
			Int64("user_id", userID).
			Msg("failed to save failed attempts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultSecretNotFound
	}

	return nil
}
