package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

func sampleSecret() models.VaultSecret {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.VaultSecret{
		UserID:     42,
		Salt:       []byte("0123456789abcdef"),
		Verifier:   []byte("verifier"),
		Recipient:  "age1recipient",
		WrappedKey: []byte("wrapped"),
		KDF:        models.KDFParams{Time: 3, MemoryKiB: 65536, Threads: 4, KeyLen: 32},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestVaultSecretRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())
	s := sampleSecret()
	cooldown := s.CreatedAt.Add(30 * time.Second)

	rows := sqlmock.NewRows(secretColumns).AddRow(
		s.UserID, s.Salt, s.Verifier, s.Recipient, s.WrappedKey,
		int64(3), int64(65536), int64(4), int64(32),
		5, cooldown, s.CreatedAt, s.UpdatedAt,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_secrets WHERE user_id = $1")).
		WithArgs(s.UserID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), s.UserID)
	require.NoError(t, err)
	assert.Equal(t, s.KDF, got.KDF)
	assert.Equal(t, s.Recipient, got.Recipient)
	assert.Equal(t, 5, got.FailedAttempts)
	assert.True(t, cooldown.Equal(got.CooldownUntil))
}

func TestVaultSecretRepository_Get_NullCooldown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())
	s := sampleSecret()

	rows := sqlmock.NewRows(secretColumns).AddRow(
		s.UserID, s.Salt, s.Verifier, s.Recipient, s.WrappedKey,
		int64(3), int64(65536), int64(4), int64(32),
		0, nil, s.CreatedAt, s.UpdatedAt,
	)
	mock.ExpectQuery("FROM vault_secrets").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), s.UserID)
	require.NoError(t, err)
	assert.True(t, got.CooldownUntil.IsZero())
}

func TestVaultSecretRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())

	mock.ExpectQuery("FROM vault_secrets").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrVaultSecretNotFound)
}

func TestVaultSecretRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_secrets")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), sampleSecret()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultSecretRepository_SaveAttempts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE vault_secrets SET failed_attempts = $1, cooldown_until = $2 WHERE user_id = $3")).
		WithArgs(3, sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveAttempts(context.Background(), 42, 3, time.Time{}))
}

func TestVaultSecretRepository_SaveAttempts_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultSecretRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE vault_secrets").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveAttempts(context.Background(), 42, 1, time.Time{})
	assert.ErrorIs(t, err, ErrVaultSecretNotFound)
}
