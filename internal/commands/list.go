package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/query"
	"github.com/spenso-dev/spenso/internal/render"
)

func newListCommand() *cobra.Command {
	var dir string
	var category string
	var noteKeyword string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dir, category, noteKeyword)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")
	cmd.Flags().StringVar(&category, "category", "", "only show this category")
	cmd.Flags().StringVar(&noteKeyword, "note", "", "only show notes containing this keyword")

	return cmd
}

func runList(cmd *cobra.Command, dir, category, noteKeyword string) error {
	cfg, svc, err := newService(dir)
	if err != nil {
		return err
	}

	expenses, err := svc.Store().Load()
	if err != nil {
		return err
	}

	filtered := query.Filter(query.SortedByDateDesc(expenses), category, noteKeyword)
	fmt.Fprint(cmd.OutOrStdout(), render.ExpenseTable(filtered, cfg.Ledger.Currency))
	return nil
}
