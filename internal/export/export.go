package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/spenso-dev/spenso/internal/model"
	"github.com/spenso-dev/spenso/internal/query"
)

// Format identifies a download format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

const (
	sheetName  = "Expenses"
	dateFormat = "2006-01-02"
)

// XLSX renders expenses as a spreadsheet with one row per record,
// newest first.
func XLSX(expenses []model.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	headers := []string{"Date", "Category", "Amount", "Note"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for row, exp := range query.SortedByDateDesc(expenses) {
		values := []any{
			exp.Date.Format(dateFormat),
			exp.Category,
			exp.Amount.InexactFloat64(),
			exp.Note,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", row+2, col+1, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders a one-page expense statement: total spent and the
// per-category breakdown with percentages.
func PDF(expenses []model.Expense, currency string) ([]byte, error) {
	total := query.TotalSpent(expenses)
	byCategory := query.ByCategory(expenses)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Expense Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format(dateFormat)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Records: %d", len(expenses)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Total Spent: %s%s", currency, total.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Category Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Cell(30, 7, "%")
	pdf.Ln(7)

	hundred := decimal.NewFromInt(100)
	pdf.SetFont("Helvetica", "", 11)
	for _, ct := range byCategory {
		percent := decimal.Zero
		if !total.IsZero() {
			percent = ct.Amount.Mul(hundred).Div(total)
		}
		pdf.Cell(70, 7, ct.Category)
		pdf.Cell(50, 7, fmt.Sprintf("%s%s", currency, ct.Amount.StringFixed(2)))
		pdf.Cell(30, 7, fmt.Sprintf("%s%%", percent.StringFixed(1)))
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}
