package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the landing command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "landing",
		Short: "SaaS landing page with hero email capture",
		Long: `landing serves the marketing landing page, captures leads from the hero
form and stores them in memory, postgres, mongo or redis (LEAD_STORAGE).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newLeadsCmd(),
	)
	return root
}
