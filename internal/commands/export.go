package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spenso-dev/spenso/internal/export"
)

func newExportCommand() *cobra.Command {
	var dir string
	var formatStr string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a copy of the ledger as CSV, XLSX or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			return runExport(cmd, dir, format, out)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger project directory")
	cmd.Flags().StringVar(&formatStr, "format", "csv", "output format: csv, xlsx or pdf")
	cmd.Flags().StringVar(&out, "out", "", "output file (default expenses_<date>.<format>)")

	return cmd
}

func runExport(cmd *cobra.Command, dir string, format export.Format, out string) error {
	cfg, svc, err := newService(dir)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case export.FormatCSV:
		data, err = svc.Store().Raw()
	case export.FormatXLSX:
		expenses, lerr := svc.Store().Load()
		if lerr != nil {
			return lerr
		}
		data, err = export.XLSX(expenses)
	case export.FormatPDF:
		expenses, lerr := svc.Store().Load()
		if lerr != nil {
			return lerr
		}
		data, err = export.PDF(expenses, cfg.Ledger.Currency)
	}
	if err != nil {
		return err
	}

	if out == "" {
		out = fmt.Sprintf("expenses_%s.%s", time.Now().Format("20060102"), format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", out)
	return nil
}
