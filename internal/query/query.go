package query

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spenso-dev/spenso/internal/model"
)

// AllCategories is the filter value that disables category filtering.
const AllCategories = "All"

// SortedByDateDesc returns a copy of expenses sorted most recent first.
// The sort is stable: same-date records keep their input order.
func SortedByDateDesc(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Filter returns the expenses matching both filters. An empty or "All"
// category disables the category filter; an empty or whitespace-only
// keyword disables the note filter. The keyword match is a
// case-insensitive substring test over the note, so records with empty
// notes never match a non-empty keyword.
func Filter(expenses []model.Expense, category, noteKeyword string) []model.Expense {
	keyword := strings.ToLower(strings.TrimSpace(noteKeyword))
	byCategory := category != "" && category != AllCategories
	byKeyword := keyword != ""

	var out []model.Expense
	for _, exp := range expenses {
		if byCategory && exp.Category != category {
			continue
		}
		if byKeyword && !strings.Contains(strings.ToLower(exp.Note), keyword) {
			continue
		}
		out = append(out, exp)
	}
	return out
}

// TotalSpent sums all amounts. Empty input sums to zero.
func TotalSpent(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
	}
	return total
}

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// ByCategory groups expenses by category and sums each group, ordered
// by descending total. Ties keep the order categories first appear in
// the input, so the result is deterministic.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, exp := range expenses {
		if _, seen := totals[exp.Category]; !seen {
			order = append(order, exp.Category)
		}
		totals[exp.Category] = totals[exp.Category].Add(exp.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Amount: totals[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
