package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/hireboard/internal/resources"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, ctx, cancel, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		counts, err := resources.DashboardCounts(ctx, api)
		if err != nil {
			return err
		}

		p := message.NewPrinter(language.English)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METRIC\tVALUE")
		p.Fprintf(w, "Users\t%d\n", counts.Users)
		p.Fprintf(w, "Service providers\t%d\n", counts.ServiceProviders)
		p.Fprintf(w, "Restaurants\t%d\n", counts.Restaurants)
		p.Fprintf(w, "Direct orders\t%d\n", counts.DirectOrders)
		p.Fprintf(w, "Online orders\t%d\n", counts.OnlineOrders)
		p.Fprintf(w, "COD collection\t₹%.2f\n", counts.CODCollection)
		p.Fprintf(w, "Online collection\t₹%.2f\n", counts.OnlineCollection)
		p.Fprintf(w, "New tasks\t%d\n", counts.NewTasks)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
