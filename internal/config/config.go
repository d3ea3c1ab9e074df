// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the vault
// server and its tools. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the integrity hash key and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Vault holds the secret guard, session and lockout settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Adapter holds the settings the terminal client uses to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control tokens,
// request integrity and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in, and required from, every
	// bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token issued by vaultctl remains
	// valid (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the storage backend.
type DB struct {
	// DSN selects the backend by scheme:
	//   - postgres:// or postgresql://: PostgreSQL
	//   - sqlite://<path> or file:<path>: SQLite
	//   - memory:// or empty: in-process map
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Vault holds the settings of the secret guard and disclosure sessions.
type Vault struct {
	// MinSecretLength is the minimum vault secret length in runes.
	// Env: VAULT_MIN_SECRET_LENGTH
	MinSecretLength int `env:"MIN_SECRET_LENGTH"`

	// SessionTTL is how long an unlocked session stays valid.
	// Env: VAULT_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// KDFTime, KDFMemoryKiB and KDFThreads are the Argon2id parameters used
	// for new or rotated vault secrets.
	// Env: VAULT_KDF_TIME, VAULT_KDF_MEMORY_KIB, VAULT_KDF_THREADS
	KDFTime      uint32 `env:"KDF_TIME"`
	KDFMemoryKiB uint32 `env:"KDF_MEMORY_KIB"`
	KDFThreads   uint8  `env:"KDF_THREADS"`

	// LockoutPolicy lists failure thresholds and their cooldowns,
	// e.g. "5:30s,10:5m,20:30m". See [Vault.LockoutTiers].
	// Env: VAULT_LOCKOUT_POLICY
	LockoutPolicy string `env:"LOCKOUT_POLICY"`

	// UnlockRatePerMinute and UnlockBurst size the per-account token bucket
	// in front of the unlock, verify, view and setting endpoints.
	// Env: VAULT_UNLOCK_RATE_PER_MINUTE, VAULT_UNLOCK_BURST
	UnlockRatePerMinute int `env:"UNLOCK_RATE_PER_MINUTE"`
	UnlockBurst         int `env:"UNLOCK_BURST"`
}

// Adapter holds the outbound settings of the terminal client.
type Adapter struct {
	// HTTPAddress is the base URL of the vault server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired disclosure sessions are
	// dropped from memory.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from the process arguments and environment.
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is [GetStructuredConfig] with explicit command-line
// arguments. Sources are applied in the following priority order (last
// source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (path from ENV_FILE, default ".env"; missing file is ignored)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 2-4)
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
