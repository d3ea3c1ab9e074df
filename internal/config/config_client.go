package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client to sign request bodies.
	// Empty disables signing.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token attached to every request.
	Token string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address, timeout and token.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// process arguments and environment.
func GetClientConfig() (*ClientConfig, error) {
	return LoadClientConfig(os.Args[1:])
}

// LoadClientConfig maps only the fields relevant to the client runtime and
// validates the resulting [ClientConfig]. Server-only settings are not
// validated here.
func LoadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}

	return clientCfg, clientCfg.validate()
}
