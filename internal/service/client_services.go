package service

import (
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/adapter"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
)

type ClientServices struct {
	VaultCache  ClientVaultCache
	VaultAccess ClientVaultAccessService
}

func NewClientServices(vaultAdapter adapter.VaultAdapter, logger *logger.Logger) *ClientServices {
	cache := NewClientVaultCache(vaultAdapter, logger)

	return &ClientServices{
		VaultCache:  cache,
		VaultAccess: NewClientVaultAccessService(vaultAdapter, cache),
	}
}
