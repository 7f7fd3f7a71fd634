package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spenso-dev/spenso/internal/model"
)

// Header is the CSV header for expenses.csv.
const Header = "date,category,amount,note"

const (
	numFields   = 4
	dateFormat  = "2006-01-02"
	colDate     = 0
	colCategory = 1
	colAmount   = 2
	colNote     = 3
)

// ReadExpenses reads all expenses from an expenses.csv reader.
// Rows whose date or amount fail to parse are dropped, not fatal:
// the store tolerates corrupt rows and degrades to the well-formed set.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows; note may be absent

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var expenses []model.Expense
	for _, rec := range records[1:] {
		exp, err := UnmarshalExpense(rec)
		if err != nil {
			continue
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

// WriteExpenses writes expenses to an expenses.csv writer (including header).
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, exp := range expenses {
		if err := cw.Write(MarshalExpense(exp)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row ([]string).
// Amount uses String() rather than a fixed scale so whatever precision a
// row carries survives a save/load round-trip.
func MarshalExpense(exp model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = exp.Date.Format(dateFormat)
	row[colCategory] = exp.Category
	row[colAmount] = exp.Amount.String()
	row[colNote] = exp.Note
	return row
}

// UnmarshalExpense converts a CSV row to an Expense. The category column
// is taken as-is; a missing note column reads as empty.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) < numFields-1 {
		return model.Expense{}, fmt.Errorf("expected at least %d fields, got %d", numFields-1, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	note := ""
	if len(record) > colNote {
		note = record[colNote]
	}

	return model.Expense{
		Date:     date,
		Category: record[colCategory],
		Amount:   amount,
		Note:     note,
	}, nil
}
