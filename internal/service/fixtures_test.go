package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  int64 = 42
	otherUserID int64 = 7
	testSecret        = "1234"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (n *recordingNotifier) Notify(_ context.Context, event models.AuditEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]string, 0, len(n.events))
	for _, e := range n.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// testVaultConfig keeps Argon2id cheap so the tests run the real key chain.
func testVaultConfig() config.Vault {
	return config.Vault{
		MinSecretLength: 4,
		SessionTTL:      15 * time.Minute,
		KDFTime:         1,
		KDFMemoryKiB:    8,
		KDFThreads:      1,
		LockoutPolicy:   "3:30s,5:5m",
	}
}

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("entry-%d", s.next)
}

// vaultFixture wires the server side of the vault over the memory backend.
type vaultFixture struct {
	clock    *fakeClock
	notifier *recordingNotifier

	secretRepo store.VaultSecretRepository
	entryRepo  store.VaultEntryRepository
	keyChain   crypto.VaultKeyChain
	sessions   *SessionRegistry

	guard      *secretGuard
	entries    EntryService
	disclosure DisclosureService
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	f := &vaultFixture{
		clock:      newFakeClock(),
		notifier:   &recordingNotifier{},
		secretRepo: store.NewMemoryVaultSecretRepository(),
		entryRepo:  store.NewMemoryVaultEntryRepository(),
		keyChain:   crypto.NewVaultKeyChain(),
	}
	cfg := testVaultConfig()

	f.sessions = NewSessionRegistry(cfg.SessionTTL)
	f.sessions.now = f.clock.Now

	guard, err := NewSecretGuard(f.secretRepo, f.keyChain, f.sessions, f.notifier, cfg, logger.Nop())
	require.NoError(t, err)
	f.guard = guard.(*secretGuard)
	f.guard.now = f.clock.Now

	inner := NewEntryService(f.entryRepo, f.guard, f.keyChain, f.sessions, f.notifier, logger.Nop()).(*entryService)
	inner.now = f.clock.Now
	inner.ids = &sequenceIDs{}
	f.entries = NewEntryValidationService(validators.NewVaultValidator(cfg.MinSecretLength)).Wrap(inner)

	f.disclosure = NewDisclosureService(f.guard, f.entryRepo, f.keyChain, f.sessions, f.notifier, logger.Nop())

	return f
}

// configure sets testSecret as the vault secret of userID.
func (f *vaultFixture) configure(t *testing.T, userID int64) {
	t.Helper()
	created, err := f.guard.SetSecret(context.Background(), userID, models.SetSecretRequest{Secret: testSecret}, "")
	require.NoError(t, err)
	require.True(t, created)
}

func (f *vaultFixture) unlock(t *testing.T, userID int64) models.DisclosureSession {
	t.Helper()
	session, err := f.disclosure.Unlock(context.Background(), userID, testSecret)
	require.NoError(t, err)
	return session
}

func (f *vaultFixture) add(t *testing.T, userID int64, domain, account, secret string) models.EntryView {
	t.Helper()
	view, err := f.entries.Add(context.Background(), userID, models.EntryInput{
		Domain:      domain,
		AccountName: account,
		Secret:      secret,
	}, "")
	require.NoError(t, err)
	return view
}

func ptr[T any](v T) *T {
	return &v
}
