package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.TokenSignKey = "sign"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with sign key", mutate: func(cfg *StructuredConfig) {}},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero session ttl", mutate: func(cfg *StructuredConfig) { cfg.Vault.SessionTTL = 0 }, wantErr: ErrInvalidVaultConfigs},
		{name: "zero min length", mutate: func(cfg *StructuredConfig) { cfg.Vault.MinSecretLength = 0 }, wantErr: ErrInvalidVaultConfigs},
		{name: "kdf memory too small", mutate: func(cfg *StructuredConfig) { cfg.Vault.KDFMemoryKiB = 8 }, wantErr: ErrInvalidVaultConfigs},
		{name: "bad lockout policy", mutate: func(cfg *StructuredConfig) { cfg.Vault.LockoutPolicy = "five:30s" }, wantErr: ErrInvalidVaultConfigs},
		{name: "zero rate", mutate: func(cfg *StructuredConfig) { cfg.Vault.UnlockRatePerMinute = 0 }, wantErr: ErrInvalidVaultConfigs},
		{name: "zero sweep interval", mutate: func(cfg *StructuredConfig) { cfg.Workers.SessionSweepInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second, Token: "jwt"}}
	assert.NoError(t, cfg.validate())

	cfg.Adapter.Token = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter.Token = "jwt"
	cfg.Adapter.HTTPAddress = "localhost:8080"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestVault_LockoutTiers(t *testing.T) {
	tiers, err := Vault{LockoutPolicy: "10:5m, 5:30s,20:30m"}.LockoutTiers()
	require.NoError(t, err)
	assert.Equal(t, []LockoutTier{
		{Threshold: 5, Cooldown: 30 * time.Second},
		{Threshold: 10, Cooldown: 5 * time.Minute},
		{Threshold: 20, Cooldown: 30 * time.Minute},
	}, tiers)

	tiers, err = Vault{}.LockoutTiers()
	require.NoError(t, err)
	assert.Empty(t, tiers)

	for _, bad := range []string{"5", "0:30s", "5:-1s", "5:soon"} {
		_, err = Vault{LockoutPolicy: bad}.LockoutTiers()
		assert.ErrorIs(t, err, ErrInvalidVaultConfigs, bad)
	}
}
