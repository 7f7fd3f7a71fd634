package render

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/spenso-dev/spenso/internal/model"
	"github.com/spenso-dev/spenso/internal/query"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestExpenseTable(t *testing.T) {
	out := ExpenseTable([]model.Expense{
		{Date: date(2024, 1, 5), Category: "Food", Amount: dec("12.5"), Note: "lunch"},
	}, "$")

	assert.Contains(t, out, "2024-01-05")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "$12.50")
	assert.Contains(t, out, "lunch")
}

func TestExpenseTable_Empty(t *testing.T) {
	out := ExpenseTable(nil, "$")
	assert.Contains(t, out, "No expenses yet")
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable(dec("512.5"), []query.CategoryTotal{
		{Category: "Rent", Amount: dec("500")},
		{Category: "Food", Amount: dec("12.5")},
	}, "$")

	assert.Contains(t, out, "Total spent: $512.50")
	rentAt := strings.Index(out, "Rent")
	foodAt := strings.Index(out, "Food")
	assert.True(t, rentAt >= 0 && foodAt > rentAt, "categories listed in given order")
}

func TestCategoryChart(t *testing.T) {
	out := CategoryChart([]query.CategoryTotal{
		{Category: "Rent", Amount: dec("500")},
		{Category: "Food", Amount: dec("12.5")},
	}, 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Greater(t, strings.Count(lines[0], "█"), strings.Count(lines[1], "█"),
		"largest total gets the longest bar")
	assert.GreaterOrEqual(t, strings.Count(lines[1], "█"), 1,
		"positive totals always draw at least one cell")
}

func TestCategoryChart_Empty(t *testing.T) {
	assert.Empty(t, CategoryChart(nil, 40))
}
