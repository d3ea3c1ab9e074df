package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// memoryVaultEntries is the in-process [VaultEntryRepository]. Entries are
// kept per account and copied on every read and write.
type memoryVaultEntries struct {
	mu      sync.RWMutex
	entries map[int64]map[string]models.VaultEntry
}

// NewMemoryVaultEntryRepository returns an empty in-memory entry repository.
func NewMemoryVaultEntryRepository() VaultEntryRepository {
	return &memoryVaultEntries{entries: make(map[int64]map[string]models.VaultEntry)}
}

func (m *memoryVaultEntries) Create(_ context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userEntries, ok := m.entries[entry.UserID]
	if !ok {
		userEntries = make(map[string]models.VaultEntry)
		m.entries[entry.UserID] = userEntries
	}
	if _, exists := userEntries[entry.ID]; exists {
		return models.VaultEntry{}, ErrEntryAlreadyExists
	}

	userEntries[entry.ID] = entry
	return entry, nil
}

func (m *memoryVaultEntries) Get(_ context.Context, userID int64, id string) (models.VaultEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[userID][id]
	if !ok {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (m *memoryVaultEntries) List(_ context.Context, userID int64) ([]models.VaultEntry, error) {
	m.mu.RLock()
	entries := make([]models.VaultEntry, 0, len(m.entries[userID]))
	for _, entry := range m.entries[userID] {
		entries = append(entries, entry)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (m *memoryVaultEntries) Update(_ context.Context, update models.VaultEntryUpdate) (models.VaultEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[update.UserID][update.ID]
	if !ok {
		return models.VaultEntry{}, ErrEntryNotFound
	}

	if update.Domain != nil {
		entry.Domain = *update.Domain
	}
	if update.AccountName != nil {
		entry.AccountName = *update.AccountName
	}
	if update.CipheredSecret != nil {
		entry.CipheredSecret = *update.CipheredSecret
	}
	if update.URL != nil {
		entry.URL = *update.URL
	}
	if update.Notes != nil {
		entry.Notes = *update.Notes
	}
	entry.UpdatedAt = update.UpdatedAt

	m.entries[update.UserID][update.ID] = entry
	return entry, nil
}

func (m *memoryVaultEntries) Delete(_ context.Context, userID int64, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[userID][id]; !ok {
		return false, nil
	}
	delete(m.entries[userID], id)
	return true, nil
}

// memoryVaultSecrets is the in-process [VaultSecretRepository].
type memoryVaultSecrets struct {
	mu      sync.RWMutex
	secrets map[int64]models.VaultSecret
}

// NewMemoryVaultSecretRepository returns an empty in-memory secret
// repository.
func NewMemoryVaultSecretRepository() VaultSecretRepository {
	return &memoryVaultSecrets{secrets: make(map[int64]models.VaultSecret)}
}

func (m *memoryVaultSecrets) Get(_ context.Context, userID int64) (models.VaultSecret, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	secret, ok := m.secrets[userID]
	if !ok {
		return models.VaultSecret{}, ErrVaultSecretNotFound
	}
	return cloneSecret(secret), nil
}

func (m *memoryVaultSecrets) Save(_ context.Context, secret models.VaultSecret) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.secrets[secret.UserID]; ok {
		secret.CreatedAt = prev.CreatedAt
	}
	m.secrets[secret.UserID] = cloneSecret(secret)
	return nil
}

func (m *memoryVaultSecrets) SaveAttempts(_ context.Context, userID int64, failedAttempts int, cooldownUntil time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	secret, ok := m.secrets[userID]
	if !ok {
		return ErrVaultSecretNotFound
	}
	secret.FailedAttempts = failedAttempts
	secret.CooldownUntil = cooldownUntil
	m.secrets[userID] = secret
	return nil
}

// cloneSecret copies the byte slices so callers cannot mutate stored state.
func cloneSecret(s models.VaultSecret) models.VaultSecret {
	s.Salt = append([]byte(nil), s.Salt...)
	s.Verifier = append([]byte(nil), s.Verifier...)
	s.WrappedKey = append([]byte(nil), s.WrappedKey...)
	return s
}
