package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/saaslanding/internal/app"
	"github.com/dmitrymomot/saaslanding/pkg/sanitizer"
	"github.com/dmitrymomot/saaslanding/svc/lead"
)

func newLeadsCmd() *cobra.Command {
	leadsCmd := &cobra.Command{
		Use:   "leads",
		Short: "Inspect captured leads",
	}

	var (
		limit int
		raw   bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print captured leads, newest first",
		Long:  `Print captured leads from the configured storage. Emails are masked unless --raw is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			log := app.NewLogger(cfg.App)
			ctx := cmd.Context()

			storage, err := app.OpenStorage(ctx, cfg, log, false)
			if err != nil {
				return err
			}
			defer storage.Close()

			leads, err := lead.NewService(cfg.Lead, storage, lead.WithLogger(log)).ListLeads(ctx, limit)
			if err != nil {
				return err
			}
			return printLeads(cmd.OutOrStdout(), leads, raw)
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of leads to print (0 for all)")
	listCmd.Flags().BoolVar(&raw, "raw", false, "print full email addresses")

	leadsCmd.AddCommand(listCmd)
	return leadsCmd
}

func printLeads(w io.Writer, leads []lead.Lead, raw bool) error {
	if len(leads) == 0 {
		_, err := fmt.Fprintln(w, "no leads captured")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tEMAIL\tSOURCE\tIP")
	for _, l := range leads {
		email := l.Email
		if !raw {
			email = sanitizer.MaskEmail(email)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.CreatedAt.Format(time.RFC3339), email, l.Source, l.IP)
	}
	return tw.Flush()
}
