package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitford/labelguard/internal/catalog"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "labelguard %s (rule catalog %s)\n", version, catalog.Version)
		},
	}
}
