package main

import (
	"fmt"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/models"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
		},
	}
}
