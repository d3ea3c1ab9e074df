package main

import (
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the storage migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			storages, err := store.NewStorages(cmd.Context(), cfg.Storage, logger.NewLogger("vaultctl"))
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			defer storages.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "storage %s is up to date\n", storages.Backend)
			return nil
		},
	}
}
