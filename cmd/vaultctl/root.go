package main

import (
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags. They are handed to the shared
// config loader as its own command-line flags, so they win over the
// environment but not over a JSON file.
type rootOptions struct {
	configPath string
	dsn        string
	signKey    string
}

func (o *rootOptions) loadConfig() (*config.StructuredConfig, error) {
	var args []string
	if o.configPath != "" {
		args = append(args, "-c", o.configPath)
	}
	if o.dsn != "" {
		args = append(args, "-d", o.dsn)
	}
	if o.signKey != "" {
		args = append(args, "-token-sign-key", o.signKey)
	}
	return config.LoadStructuredConfig(args)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "vaultctl administers the vault server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	root.PersistentFlags().StringVarP(&opts.dsn, "dsn", "d", "", "storage DSN (postgres://, sqlite://, memory://)")
	root.PersistentFlags().StringVar(&opts.signKey, "sign-key", "", "token signing key")

	root.AddCommand(newTokenCmd(opts), newMigrateCmd(opts), newVersionCmd())
	return root
}
