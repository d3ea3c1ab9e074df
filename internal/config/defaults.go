package config

import "time"

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "primer",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "memory://"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Vault: Vault{
			MinSecretLength:     4,
			SessionTTL:          15 * time.Minute,
			KDFTime:             3,
			KDFMemoryKiB:        64 * 1024,
			KDFThreads:          4,
			LockoutPolicy:       "5:30s,10:5m,20:30m",
			UnlockRatePerMinute: 10,
			UnlockBurst:         5,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval: time.Minute,
		},
	}
}
