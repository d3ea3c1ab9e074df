package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

func TestMemoryVaultEntries_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultEntryRepository()
	entry := sampleEntry()

	_, err := repo.Create(ctx, entry)
	require.NoError(t, err)

	_, err = repo.Create(ctx, entry)
	assert.ErrorIs(t, err, ErrEntryAlreadyExists)

	got, err := repo.Get(ctx, entry.UserID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	// other accounts never see it
	_, err = repo.Get(ctx, entry.UserID+1, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	url := "https://gitlab.com"
	later := entry.UpdatedAt.Add(time.Minute)
	updated, err := repo.Update(ctx, models.VaultEntryUpdate{ID: entry.ID, UserID: entry.UserID, URL: &url, UpdatedAt: later})
	require.NoError(t, err)
	assert.Equal(t, url, updated.URL)
	assert.Equal(t, entry.Domain, updated.Domain)
	assert.Equal(t, later, updated.UpdatedAt)

	deleted, err := repo.Delete(ctx, entry.UserID, entry.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, entry.UserID, entry.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Update(ctx, models.VaultEntryUpdate{ID: entry.ID, UserID: entry.UserID, URL: &url})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestMemoryVaultEntries_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultEntryRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, e := range []models.VaultEntry{
		{ID: "c", UserID: 1, CreatedAt: base.Add(time.Second)},
		{ID: "b", UserID: 1, CreatedAt: base},
		{ID: "a", UserID: 1, CreatedAt: base},
		{ID: "z", UserID: 2, CreatedAt: base},
	} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	entries, err := repo.List(ctx, 1)
	require.NoError(t, err)
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	empty, err := repo.List(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryVaultSecrets(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryVaultSecretRepository()

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrVaultSecretNotFound)
	assert.ErrorIs(t, repo.SaveAttempts(ctx, 42, 1, time.Time{}), ErrVaultSecretNotFound)

	s := sampleSecret()
	require.NoError(t, repo.Save(ctx, s))

	rotated := s
	rotated.Verifier = []byte("other")
	rotated.CreatedAt = s.CreatedAt.Add(time.Hour)
	require.NoError(t, repo.Save(ctx, rotated))

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, []byte("other"), got.Verifier)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)

	// returned slices are copies
	got.Salt[0] = 'X'
	again, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, s.Salt, again.Salt)

	until := time.Now().Add(time.Minute)
	require.NoError(t, repo.SaveAttempts(ctx, 42, 5, until))
	again, err = repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 5, again.FailedAttempts)
	assert.Equal(t, until, again.CooldownUntil)
}
