package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/expense-tracker/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are stored as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single recorded spend event.
type Expense struct {
	ID        string    `json:"id" example:"1704451200000"`                      // ID of the expense, derived from its creation time
	UserID    string    `json:"userId" example:"user_1704451100000"`             // ID of the user the expense belongs to
	CreatedAt time.Time `json:"createdAt" example:"2024-01-05T10:40:00.000000Z"` // Time the expense was recorded
	ExpenseEditable
}

// ExpenseEditable contains all fields of an expense that are set on creation.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.99"`             // The amount spent. Must be positive
	Category    string          `json:"category" example:"Food & Dining"`   // Category of the expense. Catalog names and free text are accepted
	Date        types.Date      `json:"date" example:"2024-01-05"`          // Day the money was spent
	Description string          `json:"description" example:"Pizza night"` // Optional description
}

// Normalize trims the string fields.
func (e ExpenseEditable) Normalize() ExpenseEditable {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)
	return e
}

// Validate checks that all required fields are set to valid values.
func (e ExpenseEditable) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if strings.TrimSpace(e.Category) == "" {
		return ErrExpenseCategoryMissing
	}

	if e.Date.IsZero() {
		return ErrExpenseDateMissing
	}

	return nil
}
