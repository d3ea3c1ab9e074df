package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/jackc/pgerrcode"
)

// vaultEntryRepository is the SQL implementation of [VaultEntryRepository]
// over the "vault_entries" table. It serves both PostgreSQL and SQLite; the
// difference is carried by the [DB] builder.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type vaultEntryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewVaultEntryRepository constructs a [VaultEntryRepository] backed by db.
func NewVaultEntryRepository(db *DB, logger *logger.Logger) VaultEntryRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating vault entry repository")
	return &vaultEntryRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts entry as is.
//
// Error handling:
//   - unique violation on id → [ErrEntryAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *vaultEntryRepository) Create(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.db.builder, entry)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.Create").
			Int64("user_id", entry.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert vault entry")

		if postgresError(err) == pgerrcode.UniqueViolation || sqliteConstraintUnique(err) {
			return models.VaultEntry{}, ErrEntryAlreadyExists
		}
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// Get returns the entry or [ErrEntryNotFound].
func (r *vaultEntryRepository) Get(ctx context.Context, userID int64, id string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(r.db.builder, userID, id)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.Get").
			Int64("user_id", userID).
			Str("entry_id", id).
			Msg("failed to select vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// List returns every entry of the account. An account without entries gets
// an empty, non-nil slice.
func (r *vaultEntryRepository) List(ctx context.Context, userID int64) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.List").
			Int64("user_id", userID).
			Msg("failed to execute query for listing vault entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0, 16)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultEntryRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan vault entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultEntryRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Update applies update in a single UPDATE ... RETURNING statement.
func (r *vaultEntryRepository) Update(ctx context.Context, update models.VaultEntryUpdate) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.db.builder, update)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.Update").
			Int64("user_id", update.UserID).
			Str("entry_id", update.ID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// Delete removes the entry. A missing entry is reported as false, not as an
// error.
func (r *vaultEntryRepository) Delete(ctx context.Context, userID int64, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(r.db.builder, userID, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.Delete").
			Int64("user_id", userID).
			Str("entry_id", id).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete vault entry")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
