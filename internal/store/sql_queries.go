package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

const (
	vaultEntriesTable = "vault_entries"
	vaultSecretsTable = "vault_secrets"
)

var entryColumns = []string{
	"id",
	"user_id",
	"domain",
	"account_name",
	"ciphered_secret",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

var secretColumns = []string{
	"user_id",
	"salt",
	"verifier",
	"recipient",
	"wrapped_key",
	"kdf_time",
	"kdf_memory_kib",
	"kdf_threads",
	"kdf_key_len",
	"failed_attempts",
	"cooldown_until",
	"created_at",
	"updated_at",
}

// upsertSecretSuffix replaces everything but created_at on conflict. The
// syntax is shared by PostgreSQL and SQLite.
var upsertSecretSuffix = "ON CONFLICT (user_id) DO UPDATE SET " + excludedAssignments(secretColumns[1:len(secretColumns)-2], "updated_at")

func excludedAssignments(columns []string, extra ...string) string {
	all := append(append([]string{}, columns...), extra...)
	parts := make([]string, 0, len(all))
	for _, c := range all {
		parts = append(parts, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return strings.Join(parts, ", ")
}

func buildInsertEntryQuery(b sq.StatementBuilderType, e models.VaultEntry) (string, []any, error) {
	return b.Insert(vaultEntriesTable).
		Columns(entryColumns...).
		Values(e.ID, e.UserID, e.Domain, e.AccountName, e.CipheredSecret, e.URL, e.Notes, e.CreatedAt, e.UpdatedAt).
		ToSql()
}

func buildSelectEntryQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Select(entryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(entryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// buildUpdateEntryQuery sets only the non-nil fields of update plus
// updated_at, and returns the resulting row.
func buildUpdateEntryQuery(b sq.StatementBuilderType, update models.VaultEntryUpdate) (string, []any, error) {
	q := b.Update(vaultEntriesTable)

	if update.Domain != nil {
		q = q.Set("domain", *update.Domain)
	}
	if update.AccountName != nil {
		q = q.Set("account_name", *update.AccountName)
	}
	if update.CipheredSecret != nil {
		q = q.Set("ciphered_secret", *update.CipheredSecret)
	}
	if update.URL != nil {
		q = q.Set("url", *update.URL)
	}
	if update.Notes != nil {
		q = q.Set("notes", *update.Notes)
	}

	return q.Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"user_id": update.UserID}).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Delete(vaultEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectSecretQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(secretColumns...).
		From(vaultSecretsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertSecretQuery(b sq.StatementBuilderType, s models.VaultSecret) (string, []any, error) {
	return b.Insert(vaultSecretsTable).
		Columns(secretColumns...).
		Values(
			s.UserID,
			s.Salt,
			s.Verifier,
			s.Recipient,
			s.WrappedKey,
			int64(s.KDF.Time),
			int64(s.KDF.MemoryKiB),
			int64(s.KDF.Threads),
			int64(s.KDF.KeyLen),
			s.FailedAttempts,
			nullTime(s.CooldownUntil),
			s.CreatedAt,
			s.UpdatedAt,
		).
		Suffix(upsertSecretSuffix).
		ToSql()
}

func buildUpdateAttemptsQuery(b sq.StatementBuilderType, userID int64, failedAttempts int, cooldownUntil time.Time) (string, []any, error) {
	return b.Update(vaultSecretsTable).
		Set("failed_attempts", failedAttempts).
		Set("cooldown_until", nullTime(cooldownUntil)).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.VaultEntry, error) {
	var e models.VaultEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Domain,
		&e.AccountName,
		&e.CipheredSecret,
		&e.URL,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func scanSecret(row rowScanner) (models.VaultSecret, error) {
	var (
		s                                   models.VaultSecret
		kdfTime, kdfMemory, kdfThreads, kdf int64
		cooldown                            sql.NullTime
	)
	err := row.Scan(
		&s.UserID,
		&s.Salt,
		&s.Verifier,
		&s.Recipient,
		&s.WrappedKey,
		&kdfTime,
		&kdfMemory,
		&kdfThreads,
		&kdf,
		&s.FailedAttempts,
		&cooldown,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return models.VaultSecret{}, err
	}

	s.KDF = models.KDFParams{
		Time:      uint32(kdfTime),
		MemoryKiB: uint32(kdfMemory),
		Threads:   uint8(kdfThreads),
		KeyLen:    uint32(kdf),
	}
	if cooldown.Valid {
		s.CooldownUntil = cooldown.Time
	}
	return s, nil
}
