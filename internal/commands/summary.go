package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/query"
	"github.com/spenso-dev/spenso/internal/render"
)

func newSummaryCommand() *cobra.Command {
	var dir string
	var chart bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals for the full ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, dir, chart)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")
	cmd.Flags().BoolVar(&chart, "chart", false, "draw a per-category bar chart")

	return cmd
}

func runSummary(cmd *cobra.Command, dir string, chart bool) error {
	cfg, svc, err := newService(dir)
	if err != nil {
		return err
	}

	// Totals always cover the full dataset, never a filtered view.
	expenses, err := svc.Store().Load()
	if err != nil {
		return err
	}

	byCategory := query.ByCategory(expenses)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.SummaryTable(query.TotalSpent(expenses), byCategory, cfg.Ledger.Currency))
	if chart {
		fmt.Fprint(out, render.CategoryChart(byCategory, 40))
	}
	return nil
}
