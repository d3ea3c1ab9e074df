package service

import (
	"context"
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
)

type clientVaultAccessService struct {
	adapter adapter.VaultAdapter
	cache   *clientVaultCache
}

func NewClientVaultAccessService(vaultAdapter adapter.VaultAdapter, cache ClientVaultCache) ClientVaultAccessService {
	s := &clientVaultAccessService{adapter: vaultAdapter}
	if c, ok := cache.(*clientVaultCache); ok {
		s.cache = c
	}
	return s
}

func (s *clientVaultAccessService) Status(ctx context.Context) (models.VaultStatus, error) {
	status, err := s.adapter.Status(ctx)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("get vault status: %w", mapAdapterError(err))
	}
	return status, nil
}

func (s *clientVaultAccessService) Unlock(ctx context.Context, secret string) (models.DisclosureSession, error) {
	session, err := s.adapter.Unlock(ctx, secret)
	if err != nil {
		return models.DisclosureSession{}, fmt.Errorf("unlock vault: %w", mapAdapterError(err))
	}
	return session, nil
}

func (s *clientVaultAccessService) SetSecret(ctx context.Context, secret, currentSecret string) (bool, error) {
	ack, err := s.adapter.SetSecret(ctx, models.SetSecretRequest{Secret: secret, CurrentSecret: currentSecret})
	if err != nil {
		return false, fmt.Errorf("set vault password: %w", mapAdapterError(err))
	}

	if !ack.Created && s.cache != nil {
		s.cache.maskAll()
	}
	return ack.Created, nil
}

func (s *clientVaultAccessService) VerifyPin(ctx context.Context, secret string) (bool, error) {
	valid, err := s.adapter.VerifyPin(ctx, secret)
	if err != nil {
		return false, fmt.Errorf("verify vault password: %w", mapAdapterError(err))
	}
	return valid, nil
}

func (s *clientVaultAccessService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("get server version: %w", mapAdapterError(err))
	}
	return version, nil
}
