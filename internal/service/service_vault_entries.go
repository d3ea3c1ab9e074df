package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

// IDGenerator issues entry ids.
type IDGenerator interface {
	Generate() string
}

// entryService is the concrete implementation of [EntryService]. Secrets
// are sealed to the vault recipient, so writing never needs an unlocked
// vault. Input is expected to be validated by the wrapping
// [EntryValidationService].
type entryService struct {
	entries  store.VaultEntryRepository
	guard    SecretGuard
	keyChain crypto.VaultKeyChain
	sessions *SessionRegistry
	ids      IDGenerator
	notifier Notifier

	now    func() time.Time
	logger *logger.Logger
}

// NewEntryService constructs the undecorated [EntryService].
func NewEntryService(
	entries store.VaultEntryRepository,
	guard SecretGuard,
	keyChain crypto.VaultKeyChain,
	sessions *SessionRegistry,
	notifier Notifier,
	logger *logger.Logger,
) EntryService {
	return &entryService{
		entries:  entries,
		guard:    guard,
		keyChain: keyChain,
		sessions: sessions,
		ids:      utils.NewUUIDGenerator(),
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// Add implements [EntryService]. The submitted secret is echoed back only
// when sessionToken is a live session of the account.
func (s *entryService) Add(ctx context.Context, userID int64, input models.EntryInput, sessionToken string) (models.EntryView, error) {
	log := logger.FromContext(ctx)

	recipient, err := s.guard.Recipient(ctx, userID)
	if err != nil {
		return models.EntryView{}, err
	}

	url, err := validators.NormalizeURL(input.URL)
	if err != nil {
		return models.EntryView{}, err
	}

	id := s.ids.Generate()
	ciphered, err := s.keyChain.SealSecret(id, input.Secret, recipient)
	if err != nil {
		log.Err(err).Str("func", "entryService.Add").Int64("user_id", userID).Msg("failed to seal entry secret")
		return models.EntryView{}, fmt.Errorf("seal entry secret: %w", err)
	}

	now := s.timestamp()
	created, err := s.entries.Create(ctx, models.VaultEntry{
		ID:             id,
		UserID:         userID,
		Domain:         strings.TrimSpace(input.Domain),
		AccountName:    strings.TrimSpace(input.AccountName),
		CipheredSecret: ciphered,
		URL:            url,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return models.EntryView{}, fmt.Errorf("create entry: %w", err)
	}

	s.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventEntryAdded, UserID: userID, EntryID: created.ID})

	view := models.MaskedView(created)
	if s.sessions.Valid(userID, sessionToken) {
		view.Secret = models.RevealedSecret(input.Secret)
	}
	return view, nil
}

// List implements [EntryService]. Every entry is masked, whatever the
// session state.
func (s *entryService) List(ctx context.Context, userID int64) ([]models.EntryView, error) {
	entries, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	views := make([]models.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, models.MaskedView(e))
	}
	return views, nil
}

// Get implements [EntryService].
func (s *entryService) Get(ctx context.Context, userID int64, id string) (models.EntryView, error) {
	entry, err := s.entries.Get(ctx, userID, id)
	if err != nil {
		return models.EntryView{}, fmt.Errorf("get entry: %w", err)
	}
	return models.MaskedView(entry), nil
}

// Update implements [EntryService]. An empty patch writes nothing and
// returns the stored entry as is.
func (s *entryService) Update(ctx context.Context, userID int64, id string, patch models.EntryPatch, sessionToken string) (models.EntryView, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return s.Get(ctx, userID, id)
	}

	update := models.VaultEntryUpdate{
		ID:        id,
		UserID:    userID,
		Notes:     patch.Notes,
		UpdatedAt: s.timestamp(),
	}
	if patch.Domain != nil {
		domain := strings.TrimSpace(*patch.Domain)
		update.Domain = &domain
	}
	if patch.AccountName != nil {
		accountName := strings.TrimSpace(*patch.AccountName)
		update.AccountName = &accountName
	}
	if patch.URL != nil {
		url, err := validators.NormalizeURL(*patch.URL)
		if err != nil {
			return models.EntryView{}, err
		}
		update.URL = &url
	}
	if patch.Secret != nil {
		recipient, err := s.guard.Recipient(ctx, userID)
		if err != nil {
			return models.EntryView{}, err
		}
		ciphered, err := s.keyChain.SealSecret(id, *patch.Secret, recipient)
		if err != nil {
			log.Err(err).Str("func", "entryService.Update").Int64("user_id", userID).Str("entry_id", id).Msg("failed to seal entry secret")
			return models.EntryView{}, fmt.Errorf("seal entry secret: %w", err)
		}
		update.CipheredSecret = &ciphered
	}

	updated, err := s.entries.Update(ctx, update)
	if err != nil {
		return models.EntryView{}, fmt.Errorf("update entry: %w", err)
	}

	s.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventEntryUpdated, UserID: userID, EntryID: id})

	view := models.MaskedView(updated)
	if patch.Secret != nil && s.sessions.Valid(userID, sessionToken) {
		view.Secret = models.RevealedSecret(*patch.Secret)
	}
	return view, nil
}

// Remove implements [EntryService]. Removing an absent entry is not an
// error.
func (s *entryService) Remove(ctx context.Context, userID int64, id string) (bool, error) {
	deleted, err := s.entries.Delete(ctx, userID, id)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}

	if deleted {
		s.sessions.Forget(userID, id)
		s.notifier.Notify(ctx, models.AuditEvent{Kind: models.EventEntryDeleted, UserID: userID, EntryID: id})
	}
	return deleted, nil
}

// timestamp is truncated to the precision PostgreSQL keeps.
func (s *entryService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
