package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an expense at entry time. On disk the category
// column is free text; the fixed set below is enforced only by the
// entry boundary.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryTransport     Category = "Transport"
	CategoryGroceries     Category = "Groceries"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists the valid entry categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryRent,
		CategoryTransport,
		CategoryGroceries,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryOther,
	}
}

// ValidCategory reports whether s is one of the fixed entry categories.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Expense is a single row in expenses.csv.
type Expense struct {
	Date     time.Time       // calendar date, no time component
	Category string          // free text on disk, enum at entry
	Amount   decimal.Decimal // positive at entry; legacy rows not re-validated
	Note     string
}
