package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Period is the nominal period a budget covers.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
	PeriodYearly  Period = "yearly"
)

var periods = []Period{PeriodMonthly, PeriodWeekly, PeriodYearly}

// Valid reports if the period is one of the known periods.
func (p Period) Valid() bool {
	return slices.Contains(periods, p)
}

// Budget is a spending cap for a category.
//
// Multiple budgets for the same category are allowed.
type Budget struct {
	ID       int64           `json:"id" example:"1704451200000"`        // ID of the budget
	Category string          `json:"category" example:"Food & Dining"` // Category the budget applies to
	Amount   decimal.Decimal `json:"amount" example:"400"`             // The amount that may be spent
	Period   Period          `json:"period" example:"monthly"`         // The period. One of monthly, weekly, yearly
}

// BudgetEditable contains the fields of a budget that can be set by users.
type BudgetEditable struct {
	Category string           `json:"category" example:"Food & Dining"`
	Amount   *decimal.Decimal `json:"amount" example:"400"`
	Period   Period           `json:"period" example:"monthly" default:"monthly"`
}

// Validate checks the editable fields and returns them with defaults applied.
func (b BudgetEditable) Validate() (BudgetEditable, error) {
	b.Category = strings.TrimSpace(b.Category)
	if b.Category == "" {
		return b, ErrBudgetCategoryMissing
	}

	if b.Amount == nil {
		return b, ErrBudgetAmountMissing
	}

	if b.Amount.IsNegative() {
		return b, ErrBudgetAmountNegative
	}

	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	if !b.Period.Valid() {
		return b, ErrBudgetPeriodInvalid
	}

	return b, nil
}
