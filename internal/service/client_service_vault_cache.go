// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// clientVaultCache implements [ClientVaultCache]. The list is guarded by mu;
// every adapter call happens with mu released.
type clientVaultCache struct {
	adapter adapter.VaultAdapter
	ids     IDGenerator
	logger  *logger.Logger

	mu      sync.Mutex
	entries []models.CachedEntry
}

func NewClientVaultCache(vaultAdapter adapter.VaultAdapter, logger *logger.Logger) ClientVaultCache {
	return &clientVaultCache{
		adapter: vaultAdapter,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (c *clientVaultCache) Refresh(ctx context.Context) error {
	views, err := c.adapter.List(ctx)
	if err != nil {
		return fmt.Errorf("list vault entries: %w", mapAdapterError(err))
	}

	fresh := make([]models.CachedEntry, 0, len(views))
	for _, v := range views {
		v.Secret = models.MaskedSecret()
		fresh = append(fresh, models.CachedEntry{EntryView: v})
	}

	c.mu.Lock()
	c.entries = fresh
	c.mu.Unlock()

	return nil
}

func (c *clientVaultCache) Entries() []models.CachedEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CachedEntry(nil), c.entries...)
}

func (c *clientVaultCache) CachedSecret(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexByID(c.entries, id)
	if i < 0 {
		return "", false
	}
	return c.entries[i].Secret.Value()
}

func (c *clientVaultCache) Toggle(ctx context.Context, id string) (models.CachedEntry, error) {
	c.mu.Lock()
	i := indexByID(c.entries, id)
	if i < 0 {
		c.mu.Unlock()
		return models.CachedEntry{}, store.ErrEntryNotFound
	}

	entry := &c.entries[i]
	switch {
	case entry.Visible:
		entry.Visible = false
		out := *entry
		c.mu.Unlock()
		return out, nil
	case !entry.Secret.IsMasked():
		entry.Visible = true
		out := *entry
		c.mu.Unlock()
		return out, nil
	case entry.Pending:
		c.mu.Unlock()
		return models.CachedEntry{}, ErrEntryPending
	}
	c.mu.Unlock()

	disclosure, err := c.adapter.Reveal(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	i = indexByID(c.entries, id)
	if err != nil {
		if i >= 0 {
			c.entries[i].Visible = false
		}
		return models.CachedEntry{}, fmt.Errorf("reveal entry: %w", mapAdapterError(err))
	}
	if i < 0 {
		return models.CachedEntry{}, store.ErrEntryNotFound
	}

	c.entries[i].Secret = disclosure.Secret
	c.entries[i].Visible = !disclosure.Secret.IsMasked()

	return c.entries[i], nil
}

func (c *clientVaultCache) Add(ctx context.Context, input models.EntryInput) (models.CachedEntry, error) {
	correlationID := c.ids.Generate()
	temp := models.CachedEntry{
		EntryView: models.EntryView{
			ID:          tempIDPrefix + correlationID,
			Domain:      input.Domain,
			AccountName: input.AccountName,
			Secret:      models.MaskedSecret(),
			URL:         input.URL,
			Notes:       input.Notes,
		},
		Pending:       true,
		CorrelationID: correlationID,
	}

	c.mu.Lock()
	m := Mutation{
		Kind:          MutationAdd,
		State:         MutationInFlight,
		EntryID:       temp.ID,
		CorrelationID: correlationID,
		Index:         len(c.entries),
	}
	c.entries = append(c.entries, temp)
	c.mu.Unlock()

	view, err := c.adapter.Add(ctx, input)

	return c.settle(m, view, err)
}

func (c *clientVaultCache) Update(ctx context.Context, id string, patch models.EntryPatch) (models.CachedEntry, error) {
	c.mu.Lock()
	i := indexByID(c.entries, id)
	if i < 0 {
		c.mu.Unlock()
		return models.CachedEntry{}, store.ErrEntryNotFound
	}
	prior := c.entries[i]
	if prior.Pending {
		c.mu.Unlock()
		return models.CachedEntry{}, ErrEntryPending
	}

	m := Mutation{
		Kind:      MutationUpdate,
		State:     MutationInFlight,
		EntryID:   id,
		Prior:     &prior,
		Index:     i,
		NewSecret: patch.Secret,
	}
	optimistic := applyPatch(prior, patch)
	optimistic.Pending = true
	c.entries[i] = optimistic
	c.mu.Unlock()

	view, err := c.adapter.Update(ctx, id, patch)

	return c.settle(m, view, err)
}

func (c *clientVaultCache) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	i := indexByID(c.entries, id)
	if i < 0 {
		c.mu.Unlock()
		return false, store.ErrEntryNotFound
	}
	prior := c.entries[i]
	if prior.Pending {
		c.mu.Unlock()
		return false, ErrEntryPending
	}

	m := Mutation{
		Kind:    MutationDelete,
		State:   MutationInFlight,
		EntryID: id,
		Prior:   &prior,
		Index:   i,
	}
	c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
	c.mu.Unlock()

	deleted, err := c.adapter.Delete(ctx, id)

	if _, settleErr := c.settle(m, models.EntryView{}, err); settleErr != nil {
		return false, settleErr
	}
	return deleted, nil
}

// settle moves m out of the in-flight state. It returns the record the
// server answer produced, or the mapped error after rolling back.
func (c *clientVaultCache) settle(m Mutation, view models.EntryView, callErr error) (models.CachedEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.logger.Debug().
		Str("func", "clientVaultCache.settle").
		Stringer("kind", m.Kind).
		Str("entry_id", m.EntryID)

	if callErr != nil {
		c.entries = rollback(c.entries, m)
		m.State = MutationRolledBack
		log.Stringer("state", m.State).Err(callErr).Msg("mutation rolled back")
		return models.CachedEntry{}, fmt.Errorf("%s entry: %w", m.Kind, mapAdapterError(callErr))
	}

	c.entries = commit(c.entries, m, view)
	m.State = MutationCommitted
	log.Stringer("state", m.State).Msg("mutation committed")

	if m.Kind == MutationDelete {
		return models.CachedEntry{}, nil
	}
	if i := indexByID(c.entries, view.ID); i >= 0 {
		return c.entries[i], nil
	}
	return models.CachedEntry{EntryView: view}, nil
}

func (c *clientVaultCache) Lock(ctx context.Context) error {
	err := c.adapter.Lock(ctx)

	c.maskAll()

	if err != nil {
		return fmt.Errorf("lock vault: %w", mapAdapterError(err))
	}
	return nil
}

func (c *clientVaultCache) maskAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		c.entries[i].Secret = models.MaskedSecret()
		c.entries[i].Visible = false
	}
}
