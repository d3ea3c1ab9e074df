// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can run the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := cfg.Vault.validate(); err != nil {
		return err
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (v Vault) validate() error {
	if v.MinSecretLength < 1 {
		return fmt.Errorf("%w: min secret length must be positive", ErrInvalidVaultConfigs)
	}
	if v.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidVaultConfigs)
	}
	if v.KDFTime == 0 || v.KDFThreads == 0 || v.KDFMemoryKiB < 8*uint32(v.KDFThreads) {
		return fmt.Errorf("%w: invalid kdf parameters", ErrInvalidVaultConfigs)
	}
	if v.UnlockRatePerMinute < 1 || v.UnlockBurst < 1 {
		return fmt.Errorf("%w: unlock rate limit must be positive", ErrInvalidVaultConfigs)
	}
	if _, err := v.LockoutTiers(); err != nil {
		return err
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	address := strings.ToLower(cfg.Adapter.HTTPAddress)
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
