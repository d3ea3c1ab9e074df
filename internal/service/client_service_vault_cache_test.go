// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/mock"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCache(t *testing.T) (*clientVaultCache, *mock.MockVaultAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vaultAdapter := mock.NewMockVaultAdapter(ctrl)

	cache := NewClientVaultCache(vaultAdapter, logger.Nop()).(*clientVaultCache)
	cache.ids = &sequenceIDs{}

	return cache, vaultAdapter
}

func serverView(id, domain string) models.EntryView {
	return models.EntryView{ID: id, Domain: domain, AccountName: "alice", Secret: models.MaskedSecret()}
}

// seed fills the cache through Refresh.
func seed(t *testing.T, cache *clientVaultCache, vaultAdapter *mock.MockVaultAdapter, views ...models.EntryView) {
	t.Helper()
	vaultAdapter.EXPECT().List(gomock.Any()).Return(views, nil)
	require.NoError(t, cache.Refresh(context.Background()))
}

func TestClientVaultCache_RefreshMasksEverything(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)

	leaked := serverView("a", "GitHub")
	leaked.Secret = models.RevealedSecret("p@ss1")
	seed(t, cache, vaultAdapter, leaked, serverView("b", "GitLab"))

	entries := cache.Entries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, e.Secret.IsMasked())
		assert.False(t, e.Visible)
	}

	seed(t, cache, vaultAdapter, serverView("c", "Bitbucket"))
	assert.Equal(t, []string{"c"}, ids(cache.Entries()))
}

func TestClientVaultCache_RefreshError(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))

	vaultAdapter.EXPECT().List(gomock.Any()).
		Return(nil, adapter.NewServerError(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, ""))

	err := cache.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.Equal(t, []string{"a"}, ids(cache.Entries()))
}

func TestClientVaultCache_Toggle(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	ctx := context.Background()

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil).
		Times(1)

	shown, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.True(t, shown.Visible)
	assert.Equal(t, "p@ss1", shown.Secret.Display())

	hidden, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hidden.Visible)

	value, ok := cache.CachedSecret("a")
	assert.True(t, ok, "hiding keeps the revealed value")
	assert.Equal(t, "p@ss1", value)

	shown, err = cache.Toggle(ctx, "a")
	require.NoError(t, err)
	assert.True(t, shown.Visible)
}

func TestClientVaultCache_ToggleRevealFails(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{}, adapter.NewServerError(http.StatusUnauthorized, app.MsgVaultLocked, ""))

	_, err := cache.Toggle(context.Background(), "a")

	assert.ErrorIs(t, err, ErrVaultLocked)
	entry := cache.Entries()[0]
	assert.False(t, entry.Visible)
	assert.True(t, entry.Secret.IsMasked())
}

func TestClientVaultCache_ToggleUnknown(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Toggle(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestClientVaultCache_AddCommits(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	input := models.EntryInput{Domain: "GitLab", AccountName: "alice", Secret: "p@ss2"}

	vaultAdapter.EXPECT().Add(gomock.Any(), input).
		DoAndReturn(func(context.Context, models.EntryInput) (models.EntryView, error) {
			inFlight := cache.Entries()
			require.Len(t, inFlight, 2)
			assert.Equal(t, "tmp-entry-1", inFlight[1].ID)
			assert.Equal(t, "entry-1", inFlight[1].CorrelationID)
			assert.True(t, inFlight[1].Pending)
			assert.True(t, inFlight[1].Secret.IsMasked())
			return serverView("srv-b", "GitLab"), nil
		})

	got, err := cache.Add(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "srv-b", got.ID)
	assert.False(t, got.Pending)
	assert.Equal(t, []string{"a", "srv-b"}, ids(cache.Entries()))
}

func TestClientVaultCache_AddRollsBack(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	before := cache.Entries()

	vaultAdapter.EXPECT().Add(gomock.Any(), gomock.Any()).
		Return(models.EntryView{}, adapter.NewServerError(http.StatusBadRequest, validators.ErrEmptyDomain.Error(), ""))

	_, err := cache.Add(context.Background(), models.EntryInput{AccountName: "alice", Secret: "x"})

	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyDomain)
	assert.Equal(t, before, cache.Entries())
}

func TestClientVaultCache_UpdateKeepsRevealedValue(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	ctx := context.Background()

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil)
	_, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)

	patch := models.EntryPatch{Notes: ptr("work")}
	updated := serverView("a", "GitHub")
	updated.Notes = "work"
	updated.UpdatedAt = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	vaultAdapter.EXPECT().Update(gomock.Any(), "a", patch).Return(updated, nil)

	got, err := cache.Update(ctx, "a", patch)
	require.NoError(t, err)

	assert.Equal(t, "work", got.Notes)
	assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, "p@ss1", got.Secret.Display())
	assert.True(t, got.Visible)
	assert.False(t, got.Pending)
}

func TestClientVaultCache_UpdateNewSecretWhileRevealed(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	ctx := context.Background()

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil)
	_, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)

	patch := models.EntryPatch{Secret: ptr("p@ss2")}
	vaultAdapter.EXPECT().Update(gomock.Any(), "a", patch).Return(serverView("a", "GitHub"), nil)

	got, err := cache.Update(ctx, "a", patch)
	require.NoError(t, err)

	assert.Equal(t, "p@ss2", got.Secret.Display())
}

func TestClientVaultCache_RevealDuringSecretUpdate(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	ctx := context.Background()

	revealStarted, releaseReveal := make(chan struct{}), make(chan struct{})
	updateStarted, releaseUpdate := make(chan struct{}), make(chan struct{})

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		DoAndReturn(func(context.Context, string) (models.Disclosure, error) {
			close(revealStarted)
			<-releaseReveal
			return models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil
		})
	patch := models.EntryPatch{Secret: ptr("p@ss2")}
	vaultAdapter.EXPECT().Update(gomock.Any(), "a", patch).
		DoAndReturn(func(context.Context, string, models.EntryPatch) (models.EntryView, error) {
			close(updateStarted)
			<-releaseUpdate
			return serverView("a", "GitHub"), nil
		})

	toggleErr := make(chan error, 1)
	go func() {
		_, err := cache.Toggle(ctx, "a")
		toggleErr <- err
	}()
	<-revealStarted

	updateErr := make(chan error, 1)
	go func() {
		_, err := cache.Update(ctx, "a", patch)
		updateErr <- err
	}()
	<-updateStarted

	close(releaseReveal)
	require.NoError(t, <-toggleErr)
	close(releaseUpdate)
	require.NoError(t, <-updateErr)

	entries := cache.Entries()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Secret.IsMasked())
	assert.False(t, entries[0].Visible)
	assert.False(t, entries[0].Pending)
}

func TestClientVaultCache_RefreshDuringAdd(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "GitHub"))
	ctx := context.Background()

	vaultAdapter.EXPECT().List(gomock.Any()).
		Return([]models.EntryView{serverView("a", "GitHub"), serverView("srv-1", "GitLab")}, nil)
	vaultAdapter.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.EntryInput) (models.EntryView, error) {
			require.NoError(t, cache.Refresh(ctx))
			return serverView("srv-1", "GitLab"), nil
		})

	got, err := cache.Add(ctx, models.EntryInput{Domain: "GitLab", AccountName: "alice", Secret: "p@ss2"})
	require.NoError(t, err)

	assert.Equal(t, "srv-1", got.ID)
	assert.Equal(t, []string{"a", "srv-1"}, ids(cache.Entries()))
}

func TestClientVaultCache_UpdateRollsBackAtIndex(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "A"), serverView("b", "B"), serverView("c", "C"))
	before := cache.Entries()

	patch := models.EntryPatch{Domain: ptr("B2")}
	vaultAdapter.EXPECT().Update(gomock.Any(), "b", patch).
		DoAndReturn(func(context.Context, string, models.EntryPatch) (models.EntryView, error) {
			inFlight := cache.Entries()
			assert.Equal(t, "B2", inFlight[1].Domain)
			assert.True(t, inFlight[1].Pending)
			return models.EntryView{}, adapter.NewServerError(http.StatusNotFound, app.MsgEntryNotFound, "")
		})

	_, err := cache.Update(context.Background(), "b", patch)

	assert.ErrorIs(t, err, store.ErrEntryNotFound)
	assert.Equal(t, before, cache.Entries())
}

func TestClientVaultCache_UpdateUnknown(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Update(context.Background(), "missing", models.EntryPatch{})

	assert.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestClientVaultCache_PendingEntryRejectsChanges(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	ctx := context.Background()

	vaultAdapter.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.EntryInput) (models.EntryView, error) {
			_, err := cache.Update(ctx, "tmp-entry-1", models.EntryPatch{Notes: ptr("x")})
			assert.ErrorIs(t, err, ErrEntryPending)

			_, err = cache.Delete(ctx, "tmp-entry-1")
			assert.ErrorIs(t, err, ErrEntryPending)

			_, err = cache.Toggle(ctx, "tmp-entry-1")
			assert.ErrorIs(t, err, ErrEntryPending)

			return serverView("srv-a", "GitHub"), nil
		})

	_, err := cache.Add(ctx, models.EntryInput{Domain: "GitHub", AccountName: "alice", Secret: "x"})
	require.NoError(t, err)
}

func TestClientVaultCache_Delete(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "A"), serverView("b", "B"))

	vaultAdapter.EXPECT().Delete(gomock.Any(), "a").Return(true, nil)

	deleted, err := cache.Delete(context.Background(), "a")
	require.NoError(t, err)

	assert.True(t, deleted)
	assert.Equal(t, []string{"b"}, ids(cache.Entries()))
}

func TestClientVaultCache_DeleteRollsBackAtIndex(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "A"), serverView("b", "B"), serverView("c", "C"))
	before := cache.Entries()

	vaultAdapter.EXPECT().Delete(gomock.Any(), "b").
		DoAndReturn(func(context.Context, string) (bool, error) {
			assert.Equal(t, []string{"a", "c"}, ids(cache.Entries()))
			return false, errors.New("connection reset")
		})

	deleted, err := cache.Delete(context.Background(), "b")

	assert.Error(t, err)
	assert.False(t, deleted)
	assert.Equal(t, before, cache.Entries())
}

func TestClientVaultCache_LockMasksEvenOnFailure(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "A"))
	ctx := context.Background()

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil)
	_, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)

	vaultAdapter.EXPECT().Lock(gomock.Any()).Return(errors.New("connection refused"))

	err = cache.Lock(ctx)

	assert.Error(t, err)
	entry := cache.Entries()[0]
	assert.True(t, entry.Secret.IsMasked())
	assert.False(t, entry.Visible)
	_, ok := cache.CachedSecret("a")
	assert.False(t, ok)
}

func TestClientVaultAccess_SetSecret(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	seed(t, cache, vaultAdapter, serverView("a", "A"))
	access := NewClientVaultAccessService(vaultAdapter, cache)
	ctx := context.Background()

	vaultAdapter.EXPECT().Reveal(gomock.Any(), "a").
		Return(models.Disclosure{EntryID: "a", Secret: models.RevealedSecret("p@ss1")}, nil)
	_, err := cache.Toggle(ctx, "a")
	require.NoError(t, err)

	vaultAdapter.EXPECT().SetSecret(gomock.Any(), models.SetSecretRequest{Secret: "5678", CurrentSecret: "1234"}).
		Return(models.SetSecretResponse{Created: false}, nil)

	created, err := access.SetSecret(ctx, "5678", "1234")
	require.NoError(t, err)

	assert.False(t, created)
	assert.True(t, cache.Entries()[0].Secret.IsMasked(), "a rotation re-masks the cache")
}

func TestClientVaultAccess_ErrorsAreMapped(t *testing.T) {
	cache, vaultAdapter := newTestCache(t)
	access := NewClientVaultAccessService(vaultAdapter, cache)
	ctx := context.Background()

	vaultAdapter.EXPECT().Unlock(gomock.Any(), "0000").
		Return(models.DisclosureSession{}, adapter.NewServerError(http.StatusTooManyRequests, app.MsgTooManyAttempts, "30"))
	vaultAdapter.EXPECT().SetSecret(gomock.Any(), gomock.Any()).
		Return(models.SetSecretResponse{}, adapter.NewServerError(http.StatusUnauthorized, app.MsgProofRequired, ""))
	vaultAdapter.EXPECT().VerifyPin(gomock.Any(), "1234").
		Return(false, adapter.NewServerError(http.StatusConflict, app.MsgVaultNotConfigured, ""))
	vaultAdapter.EXPECT().Status(gomock.Any()).Return(models.VaultStatus{Configured: true}, nil)
	vaultAdapter.EXPECT().Version(gomock.Any()).Return("1.2.0", nil)

	_, err := access.Unlock(ctx, "0000")
	require.ErrorIs(t, err, ErrTooManyAttempts)
	var cooldown *CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), cooldown.Until, 5*time.Second)

	_, err = access.SetSecret(ctx, "5678", "")
	assert.ErrorIs(t, err, ErrProofRequired)

	_, err = access.VerifyPin(ctx, "1234")
	assert.ErrorIs(t, err, ErrVaultNotConfigured)

	status, err := access.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Configured)

	version, err := access.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", version)
}

func TestMapAdapterError(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"transport error passes through", plain, plain},
		{"wrong password", adapter.NewServerError(http.StatusUnauthorized, app.MsgWrongVaultPassword, ""), ErrWrongVaultSecret},
		{"session expired", adapter.NewServerError(http.StatusUnauthorized, app.MsgSessionExpired, ""), ErrSessionExpired},
		{"not found", adapter.NewServerError(http.StatusNotFound, "whatever", ""), store.ErrEntryNotFound},
		{"secret too short", adapter.NewServerError(http.StatusBadRequest, validators.ErrSecretTooShort.Error(), ""), validators.ErrSecretTooShort},
		{"unknown bad request", adapter.NewServerError(http.StatusBadRequest, "odd", ""), validators.ErrValidation},
		{"rate limited", adapter.NewServerError(http.StatusTooManyRequests, app.MsgTooManyRequests, ""), adapter.ErrTooManyRequests},
		{"internal", adapter.NewServerError(http.StatusInternalServerError, app.MsgInternalServerError, ""), adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestRetryAfterOf(t *testing.T) {
	assert.Equal(t, 12*time.Second, retryAfterOf(adapter.NewServerError(http.StatusTooManyRequests, "", "12")))
	assert.Equal(t, time.Second, retryAfterOf(adapter.NewServerError(http.StatusTooManyRequests, "", "")))
	assert.Equal(t, time.Second, retryAfterOf(errors.New("plain")))
}
