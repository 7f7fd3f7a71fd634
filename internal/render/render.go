package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/spenso-dev/spenso/internal/model"
	"github.com/spenso-dev/spenso/internal/query"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

const dateFormat = "2006-01-02"

// ExpenseTable renders expenses as an aligned table, one line per record.
func ExpenseTable(expenses []model.Expense, currency string) string {
	if len(expenses) == 0 {
		return dimStyle.Render("No expenses yet.") + "\n"
	}

	noteWidth := len("Note")
	catWidth := len("Category")
	amountWidth := 0
	for _, exp := range expenses {
		noteWidth = max(noteWidth, len(exp.Note))
		catWidth = max(catWidth, len(exp.Category))
		amountWidth = max(amountWidth, len(currency+exp.Amount.StringFixed(2)))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-10s  %-*s  %*s  %s",
		"Date", catWidth, "Category", amountWidth, "Amount", "Note")))
	b.WriteString("\n")
	for _, exp := range expenses {
		b.WriteString(fmt.Sprintf("%-10s  %-*s  %*s  %s\n",
			exp.Date.Format(dateFormat),
			catWidth, exp.Category,
			amountWidth, currency+exp.Amount.StringFixed(2),
			exp.Note))
	}
	return b.String()
}

// SummaryTable renders the total and the per-category breakdown.
func SummaryTable(total decimal.Decimal, byCategory []query.CategoryTotal, currency string) string {
	var b strings.Builder
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total spent: %s%s", currency, total.StringFixed(2))))
	b.WriteString("\n")
	if len(byCategory) == 0 {
		return b.String()
	}

	catWidth := len("Category")
	amountWidth := 0
	for _, ct := range byCategory {
		catWidth = max(catWidth, len(ct.Category))
		amountWidth = max(amountWidth, len(currency+ct.Amount.StringFixed(2)))
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %*s", catWidth, "Category", amountWidth, "Amount")))
	b.WriteString("\n")
	for _, ct := range byCategory {
		b.WriteString(fmt.Sprintf("%-*s  %*s\n",
			catWidth, ct.Category, amountWidth, currency+ct.Amount.StringFixed(2)))
	}
	return b.String()
}

// CategoryChart renders a horizontal bar chart of per-category totals,
// scaled so the largest total fills width cells.
func CategoryChart(byCategory []query.CategoryTotal, width int) string {
	if len(byCategory) == 0 {
		return ""
	}
	if width <= 0 {
		width = 40
	}

	maxAmount := byCategory[0].Amount
	for _, ct := range byCategory {
		if ct.Amount.GreaterThan(maxAmount) {
			maxAmount = ct.Amount
		}
	}
	if !maxAmount.IsPositive() {
		return ""
	}

	catWidth := 0
	for _, ct := range byCategory {
		catWidth = max(catWidth, len(ct.Category))
	}

	scale := decimal.NewFromInt(int64(width))
	var b strings.Builder
	for _, ct := range byCategory {
		cells := int(ct.Amount.Mul(scale).Div(maxAmount).IntPart())
		if cells < 1 && ct.Amount.IsPositive() {
			cells = 1
		}
		b.WriteString(fmt.Sprintf("%-*s  %s\n",
			catWidth, ct.Category, barStyle.Render(strings.Repeat("█", cells))))
	}
	return b.String()
}
