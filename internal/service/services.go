package service

import (
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/crypto"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/validators"
)

type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	SecretGuard       SecretGuard
	EntryService      EntryService
	DisclosureService DisclosureService

	// Sessions is shared by the guard and the disclosure controller and
	// swept by the session worker.
	Sessions *SessionRegistry
	Notifier Notifier
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	keyChain := crypto.NewVaultKeyChain()
	sessions := NewSessionRegistry(cfg.Vault.SessionTTL)
	notifier := NewLogNotifier(logger)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	guard, err := NewSecretGuard(storages.VaultSecretRepository, keyChain, sessions, notifier, cfg.Vault, logger)
	if err != nil {
		return nil, err
	}

	entries := NewEntryValidationService(validators.NewVaultValidator(cfg.Vault.MinSecretLength)).
		Wrap(NewEntryService(storages.VaultEntryRepository, guard, keyChain, sessions, notifier, logger))

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
		SecretGuard:       guard,
		EntryService:      entries,
		DisclosureService: NewDisclosureService(guard, storages.VaultEntryRepository, keyChain, sessions, notifier, logger),
		Sessions:          sessions,
		Notifier:          notifier,
	}, nil
}
