package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/ledger"
	"github.com/spenso-dev/spenso/internal/model"
)

const dateFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var dir string
	var dateStr string
	var category string
	var amountStr string
	var note string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if dateStr != "" {
				parsed, err := time.Parse(dateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("date must be %s: %w", dateFormat, err)
				}
				date = parsed
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("amount must be numeric: %w", err)
			}

			return runAdd(cmd, dir, ledger.AddParams{
				Date:     date,
				Category: model.Category(category),
				Amount:   amount,
				Note:     note,
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (default today)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amountStr, "amount", "", "expense amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&note, "note", "", "optional note")

	return cmd
}

func runAdd(cmd *cobra.Command, dir string, params ledger.AddParams) error {
	cfg, svc, err := newService(dir)
	if err != nil {
		return err
	}

	created, err := svc.Add(params)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s%s", created.Date.Format(dateFormat),
		created.Category, cfg.Ledger.Currency, created.Amount.StringFixed(2))
	if created.Note != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)", created.Note)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
