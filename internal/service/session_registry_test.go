package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(clock *fakeClock) *SessionRegistry {
	r := NewSessionRegistry(15 * time.Minute)
	r.now = clock.Now
	return r
}

func TestSessionRegistry_GrantAndLookup(t *testing.T) {
	clock := newFakeClock()
	r := newTestRegistry(clock)
	key := []byte("AGE-SECRET-KEY-1TEST")

	session, err := r.Grant(testUserID, key)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(session.Token)
	require.NoError(t, err)
	assert.Len(t, raw, sessionTokenBytes)
	assert.Equal(t, clock.Now().Add(15*time.Minute), session.ExpiresAt)

	got, gotKey, err := r.Lookup(testUserID, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, key, gotKey)

	// The caller's copy is independent of the registry's.
	gotKey[0] = 'X'
	_, again, err := r.Lookup(testUserID, session.Token)
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func TestSessionRegistry_LookupForeignOrUnknown(t *testing.T) {
	r := newTestRegistry(newFakeClock())
	session, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)

	_, _, err = r.Lookup(otherUserID, session.Token)
	assert.ErrorIs(t, err, ErrVaultLocked)

	_, _, err = r.Lookup(testUserID, "no-such-token")
	assert.ErrorIs(t, err, ErrVaultLocked)

	assert.False(t, r.Valid(testUserID, ""))
	assert.False(t, r.Valid(otherUserID, session.Token))
	assert.True(t, r.Valid(testUserID, session.Token))
}

func TestSessionRegistry_Expiry(t *testing.T) {
	clock := newFakeClock()
	r := newTestRegistry(clock)
	session, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)

	_, _, err = r.Lookup(testUserID, session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Zero(t, r.Len(), "an expired session is dropped on lookup")

	_, _, err = r.Lookup(testUserID, session.Token)
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestSessionRegistry_Session(t *testing.T) {
	clock := newFakeClock()
	r := newTestRegistry(clock)
	session, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)
	r.MarkDisclosed(session.Token, "e1")

	got, disclosed, err := r.Session(testUserID, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, 1, disclosed)

	_, _, err = r.Session(testUserID+1, session.Token)
	assert.ErrorIs(t, err, ErrVaultLocked)

	clock.Advance(15 * time.Minute)
	_, _, err = r.Session(testUserID, session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionRegistry_RevokeWipesKey(t *testing.T) {
	r := newTestRegistry(newFakeClock())
	session, err := r.Grant(testUserID, []byte("secret-key"))
	require.NoError(t, err)

	stored := r.sessions[session.Token].key

	assert.False(t, r.Revoke(otherUserID, session.Token), "another account cannot lock this session")
	assert.True(t, r.Revoke(testUserID, session.Token))
	assert.False(t, r.Revoke(testUserID, session.Token))

	assert.Equal(t, make([]byte, len("secret-key")), stored)
	assert.False(t, r.Valid(testUserID, session.Token))
}

func TestSessionRegistry_RevokeAll(t *testing.T) {
	r := newTestRegistry(newFakeClock())
	for i := 0; i < 3; i++ {
		_, err := r.Grant(testUserID, []byte("k"))
		require.NoError(t, err)
	}
	other, err := r.Grant(otherUserID, []byte("k"))
	require.NoError(t, err)

	assert.Equal(t, 3, r.RevokeAll(testUserID))
	assert.Zero(t, r.RevokeAll(testUserID))
	assert.True(t, r.Valid(otherUserID, other.Token))
	assert.Equal(t, 1, r.Len())
}

func TestSessionRegistry_DisclosedAndForget(t *testing.T) {
	r := newTestRegistry(newFakeClock())
	first, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)
	second, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)

	r.MarkDisclosed(first.Token, "e1")
	r.MarkDisclosed(first.Token, "e1")
	r.MarkDisclosed(first.Token, "e2")
	r.MarkDisclosed(second.Token, "e1")
	r.MarkDisclosed("unknown", "e1")

	assert.Equal(t, 2, r.Disclosed(first.Token))
	assert.Equal(t, 1, r.Disclosed(second.Token))

	r.Forget(testUserID, "e1")

	assert.Equal(t, 1, r.Disclosed(first.Token))
	assert.Zero(t, r.Disclosed(second.Token))
	assert.Zero(t, r.Disclosed("unknown"))
}

func TestSessionRegistry_Latest(t *testing.T) {
	clock := newFakeClock()
	r := newTestRegistry(clock)

	_, ok := r.Latest(testUserID)
	assert.False(t, ok)

	_, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)
	clock.Advance(time.Minute)
	newer, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)

	got, ok := r.Latest(testUserID)
	require.True(t, ok)
	assert.Equal(t, newer.Token, got.Token)

	clock.Advance(15 * time.Minute)
	_, ok = r.Latest(testUserID)
	assert.False(t, ok)
}

func TestSessionRegistry_Sweep(t *testing.T) {
	clock := newFakeClock()
	r := newTestRegistry(clock)

	_, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)
	_, err = r.Grant(otherUserID, []byte("k"))
	require.NoError(t, err)
	clock.Advance(10 * time.Minute)
	fresh, err := r.Grant(testUserID, []byte("k"))
	require.NoError(t, err)

	assert.Empty(t, r.Sweep())

	clock.Advance(6 * time.Minute)

	owners := r.Sweep()
	assert.ElementsMatch(t, []int64{testUserID, otherUserID}, owners)
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Valid(testUserID, fresh.Token))
}
