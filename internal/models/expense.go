package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	CategoryFood     ExpenseCategory = "Food"
	CategoryShopping ExpenseCategory = "Shopping"
	CategoryBills    ExpenseCategory = "Bills"
	CategoryOther    ExpenseCategory = "Other"
)

// All expenses are tracked in a single fixed currency.
const (
	DefaultCurrency       = "INR"
	DefaultCurrencySymbol = "₹"
)

var categories = map[string]ExpenseCategory{
	"food":     CategoryFood,
	"shopping": CategoryShopping,
	"bills":    CategoryBills,
	"other":    CategoryOther,
}

// ParseCategory maps free text onto the closed category set. The classifier
// response is not guaranteed to be one of the four labels, so anything
// unrecognized falls back to Other.
func ParseCategory(s string) ExpenseCategory {
	c, ok := LookupCategory(s)
	if !ok {
		return CategoryOther
	}
	return c
}

// LookupCategory is the strict form of ParseCategory, used for
// caller-supplied categories that must already be valid.
func LookupCategory(s string) (ExpenseCategory, bool) {
	c, ok := categories[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

type Expense struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Amount         float64         `db:"amount"`
	Description    string          `db:"description"`
	Category       ExpenseCategory `db:"category"`
	Currency       string          `db:"currency"`
	CurrencySymbol string          `db:"currency_symbol"`
	CreatedAt      time.Time       `db:"created_at"`
}

// CategoryTotal is one row of the per-category spending summary.
type CategoryTotal struct {
	Category ExpenseCategory `db:"category"`
	Total    float64         `db:"total"`
}
