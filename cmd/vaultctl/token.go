package main

import (
	"fmt"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/service"
	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage bearer tokens",
	}

	var (
		userID   int64
		duration time.Duration
	)

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token for an account",
		Example: `  vaultctl token issue --user 42
  vaultctl token issue --user 42 --duration 1h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user must be a positive account id")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if duration > 0 {
				cfg.App.TokenDuration = duration
			}

			issued, err := service.NewAuthService(cfg.App, logger.Nop()).CreateToken(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), issued.SignedString)
			return nil
		},
	}
	issue.Flags().Int64VarP(&userID, "user", "u", 0, "account id written to the sub claim")
	issue.Flags().DurationVar(&duration, "duration", 0, "token lifetime (default from config)")

	token.AddCommand(issue)
	return token
}
